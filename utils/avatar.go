package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Background colors for generated placeholder portraits.
var avatarColors = []string{
	"F8C9D4", "E8D5C4", "D4E2D4", "C9D8F8", "F5E6CC",
	"E6CCF5", "CCF5E6", "F5CCCC", "D6E4F0", "F0E4D6",
}

// PlaceholderAvatar returns an initials-based portrait URL for an expert
// profile that was created without a photo.
func PlaceholderAvatar(name string) string {
	colorIndex, _ := rand.Int(rand.Reader, big.NewInt(int64(len(avatarColors))))
	color := avatarColors[colorIndex.Int64()]
	return fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s&backgroundColor=%s",
		InitialsFromName(name), color)
}

// InitialsFromName extracts up to two initials from a full name. Vietnamese
// names put the given name last, so the first and last words are used.
func InitialsFromName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "K"
	}
	first := []rune(fields[0])
	initials := string(first[0])
	if len(fields) > 1 {
		last := []rune(fields[len(fields)-1])
		initials += string(last[0])
	}
	return initials
}
