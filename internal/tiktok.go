package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

const uploadDateLayout = "2006-01-02 15:04:05"

// HashIdentifier replaces a personally identifying value with a stable
// one-way digest. The same input always yields the same pseudonym; the raw
// value is never kept in any output table.
func HashIdentifier(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// TikTokRegistry returns the extractor set for a TikTok JSON export.
func TikTokRegistry() *Registry {
	return NewRegistry(
		Extractor{Name: "id", Run: extractID},
		Extractor{Name: "likes", Run: extractLikes},
		Extractor{Name: "watch_history", Run: extractWatchHistory},
		Extractor{Name: "login_history", Run: extractLogins},
		Extractor{Name: "upload_history", Run: extractVideoUploads},
		Extractor{Name: "purchase_history", Run: extractPurchases},
	)
}

func extractID(doc Document, log *Log) ExtractionResult {
	username := doc.Map("Profile", "Profile Information", "ProfileMap").String("userName")
	if username == "" {
		log.Append("error", "profile userName missing, hashing empty value")
	}
	return ExtractionResult{
		ID:    "id",
		Title: Translatable{"en": "Your Random ID", "nl": "Your Random ID"},
		Rows:  []Row{{"Id": HashIdentifier(username)}},
	}
}

func extractLikes(doc Document, log *Log) ExtractionResult {
	var rows []Row
	for i, item := range doc.List("Activity", "Like List", "ItemFavoriteList") {
		like := Field(item)
		date, link := like.String("Date"), like.String("Link")
		if date == "" || link == "" {
			log.Debug(fmt.Sprintf("like %d is missing 'Date' or 'Link', skipping", i+1))
			continue
		}
		rows = append(rows, Row{"Date": date, "Link": link})
	}
	return ExtractionResult{
		ID:    "likes",
		Title: Translatable{"en": "Likes", "nl": "Likes"},
		Rows:  rows,
	}
}

func extractWatchHistory(doc Document, log *Log) ExtractionResult {
	var rows []Row
	for i, item := range doc.List("Activity", "Video Browsing History", "VideoList") {
		video := Field(item)
		date, link := video.String("Date"), video.String("Link")
		if date == "" || link == "" {
			log.Debug(fmt.Sprintf("video %d is missing 'Date' or 'Link', skipping", i+1))
			continue
		}
		rows = append(rows, Row{"Date": date, "Link": link})
	}
	return ExtractionResult{
		ID:    "watch_history",
		Title: Translatable{"en": "Watch History", "nl": "Watch History"},
		Rows:  rows,
	}
}

func extractLogins(doc Document, log *Log) ExtractionResult {
	var rows []Row
	for i, item := range doc.List("Activity", "Login History", "LoginHistoryList") {
		login := Field(item)
		date := login.String("Date")
		device := login.String("DeviceModel")
		network := login.String("NetworkType")
		if date == "" || device == "" || network == "" {
			log.Debug(fmt.Sprintf("login %d is missing 'Date', 'DeviceModel' or 'NetworkType', skipping", i+1))
			continue
		}
		rows = append(rows, Row{"Date": date, "Device": device, "Network": network})
	}
	return ExtractionResult{
		ID:    "login_history",
		Title: Translatable{"en": "Login History", "nl": "Login History"},
		Rows:  rows,
	}
}

// extractVideoUploads reduces each upload to (ISO year, ISO week, like
// count) so no upload timestamps leave the device at full precision.
func extractVideoUploads(doc Document, log *Log) ExtractionResult {
	var rows []Row
	for i, item := range doc.List("Video", "Videos", "VideoList") {
		video := Field(item)
		dateStr := video.String("Date")
		if dateStr == "" {
			log.Debug(fmt.Sprintf("video %d is missing 'Date', skipping", i+1))
			continue
		}
		date, err := time.Parse(uploadDateLayout, dateStr)
		if err != nil {
			log.Debug(fmt.Sprintf("invalid date format for video %d, skipping", i+1))
			continue
		}
		_, week := date.ISOWeek()
		year := date.Year()

		likesStr := video.String("Likes")
		likes, err := strconv.Atoi(likesStr)
		if err != nil {
			log.Debug(fmt.Sprintf("invalid likes count for video %d, using 0", i+1))
			likes = 0
		}
		rows = append(rows, Row{"Year": year, "Week": week, "Likes": likes})
	}
	return ExtractionResult{
		ID:    "upload_history",
		Title: Translatable{"en": "Upload History", "nl": "Upload History"},
		Rows:  rows,
	}
}

func extractPurchases(doc Document, log *Log) ExtractionResult {
	var rows []Row
	for i, item := range doc.List("Activity", "Purchase History", "BuyGifts") {
		gift := Field(item)
		date, value := gift.String("Date"), gift.String("Value")
		if date == "" || value == "" {
			log.Debug(fmt.Sprintf("purchase %d is missing 'Date' or 'Value', skipping", i+1))
			continue
		}
		rows = append(rows, Row{"Date": date, "Value": value})
	}
	return ExtractionResult{
		ID:    "purchase_history",
		Title: Translatable{"en": "Purchase History", "nl": "Purchase History"},
		Rows:  rows,
	}
}
