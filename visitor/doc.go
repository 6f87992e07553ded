// Package visitor generates and inspects visitor data tokens.
//
// A visitor data token is an anonymous session identifier accepted by the
// video platform's internal API. It is a three-level protobuf-wire record
// encoded as unpadded base64url:
//
//	outer:  1 = random id, 5 = unix timestamp, 6 = locale record
//	locale: 1 = region, 2 = seed record
//	seed:   2 = "", 4 = random value in [1,255]
//
// GenerateRandomVisitorData uses a process-wide generator that is safe for
// concurrent use; NewGenerator builds one with an injected random source and
// clock.
package visitor
