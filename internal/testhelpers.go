package internal

import "context"

// ScriptedBridge replays a fixed sequence of responses and records every
// command it receives. Used by flow and processor tests.
type ScriptedBridge struct {
	Responses []Response

	Rendered []*RenderCommand
	Donated  []*DonateCommand
}

// Render records the command and returns the next scripted response, or a
// skip once the script runs out.
func (b *ScriptedBridge) Render(ctx context.Context, cmd *RenderCommand) (Response, error) {
	b.Rendered = append(b.Rendered, cmd)
	if len(b.Responses) == 0 {
		return SkipResponse{}, nil
	}
	resp := b.Responses[0]
	b.Responses = b.Responses[1:]
	return resp, nil
}

// Donate records the command.
func (b *ScriptedBridge) Donate(ctx context.Context, cmd *DonateCommand) error {
	b.Donated = append(b.Donated, cmd)
	return nil
}

// SampleExportJSON is a minimal TikTok export with one row per extractor.
const SampleExportJSON = `{
	"Profile": {
		"Profile Information": {
			"ProfileMap": {"userName": "testuser"}
		}
	},
	"Activity": {
		"Like List": {
			"ItemFavoriteList": [
				{"Date": "2021-01-01", "Link": "http://x"}
			]
		},
		"Video Browsing History": {
			"VideoList": [
				{"Date": "2021-02-02", "Link": "http://y"}
			]
		},
		"Login History": {
			"LoginHistoryList": [
				{"Date": "2021-03-03", "DeviceModel": "Pixel", "NetworkType": "WiFi"}
			]
		},
		"Purchase History": {
			"BuyGifts": [
				{"Date": "2021-04-04", "Value": "5 coins"}
			]
		}
	},
	"Video": {
		"Videos": {
			"VideoList": [
				{"Date": "2021-05-05 10:00:00", "Likes": "12"}
			]
		}
	}
}`

// SampleBundle extracts SampleExportJSON into a consent bundle.
func SampleBundle() Bundle {
	doc, err := ParseDocument([]byte(SampleExportJSON))
	if err != nil {
		panic(err)
	}
	var log Log
	results := TikTokRegistry().Run(doc, &log)
	return BuildBundle(results, &log)
}
