package client

import (
	"github.com/oddbit-project/visitordata/visitor"
)

const (
	DefaultLanguage = "en"

	// DefaultVisitorData is the stock token sent by web clients that do not generate their own
	DefaultVisitorData = "CgtEUlRINDFjdm1YayjX1pSaBg%3D%3D"
)

// Client describes an API client profile
type Client struct {
	Name              string
	Version           string
	ID                string
	Platform          string
	UserAgent         string
	OSVersion         string
	AndroidSDKVersion int
}

var (
	WebRemix = Client{
		Name:      "WEB_REMIX",
		Version:   "1.20250122.01.00",
		ID:        "67",
		Platform:  "DESKTOP",
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:128.0) Gecko/20100101 Firefox/128.0",
	}

	IOS = Client{
		Name:      "IOS",
		Version:   "20.03.02",
		ID:        "5",
		Platform:  "MOBILE",
		UserAgent: "com.google.ios.youtube/20.03.02 (iPhone16,2; U; CPU iOS 18_2_1 like Mac OS X;)",
		OSVersion: "18.2.1.22C161",
	}

	AndroidMusic = Client{
		Name:              "ANDROID_MUSIC",
		Version:           "7.27.52",
		ID:                "21",
		Platform:          "MOBILE",
		UserAgent:         "com.google.android.apps.youtube.music/7.27.52 (Linux; U; Android 11) gzip",
		AndroidSDKVersion: 30,
	}

	TVEmbedded = Client{
		Name:      "TVHTML5_SIMPLY_EMBEDDED_PLAYER",
		Version:   "2.0",
		ID:        "85",
		Platform:  "TV",
		UserAgent: "Mozilla/5.0 (PlayStation; PlayStation 4/12.00) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/15.4 Safari/605.1.15",
	}
)

// ClientInfo is the "client" object of a request context
type ClientInfo struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	ClientID          string `json:"clientId"`
	Platform          string `json:"platform,omitempty"`
	Hl                string `json:"hl"`
	VisitorData       string `json:"visitorData,omitempty"`
	AndroidSDKVersion int    `json:"androidSdkVersion,omitempty"`
	UserAgent         string `json:"userAgent,omitempty"`
	OSVersion         string `json:"osVersion,omitempty"`
}

// ThirdParty identifies the embedding page
type ThirdParty struct {
	EmbedURL string `json:"embedUrl"`
}

// Context is the "context" object sent in every request body
type Context struct {
	Client     ClientInfo  `json:"client"`
	ThirdParty *ThirdParty `json:"thirdParty,omitempty"`
}

// Context builds a request context for the client profile
// an empty visitorData is omitted from the request
func (c Client) Context(visitorData string) Context {
	return Context{
		Client: ClientInfo{
			ClientName:        c.Name,
			ClientVersion:     c.Version,
			ClientID:          c.ID,
			Platform:          c.Platform,
			Hl:                DefaultLanguage,
			VisitorData:       visitorData,
			AndroidSDKVersion: c.AndroidSDKVersion,
			UserAgent:         c.UserAgent,
			OSVersion:         c.OSVersion,
		},
	}
}

// WithEmbedURL returns a copy of ctx with a third-party embed url
func (ctx Context) WithEmbedURL(url string) Context {
	ctx.ThirdParty = &ThirdParty{EmbedURL: url}
	return ctx
}

// NewIOSContext returns an IOS request context with freshly generated visitor data
// if g is nil, the process-wide generator is used
func NewIOSContext(g *visitor.Generator) Context {
	if g == nil {
		return IOS.Context(visitor.GenerateRandomVisitorData())
	}
	return IOS.Context(g.Generate())
}

// NewWebContext returns a WEB_REMIX request context with the stock visitor data
func NewWebContext() Context {
	return WebRemix.Context(DefaultVisitorData)
}
