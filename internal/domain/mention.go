package domain

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// MaxUsernameLength bounds how many characters after '@' are taken as a username.
const MaxUsernameLength = 30

var mentionPattern = regexp.MustCompile(`@([A-Za-z0-9_.]{1,30})`)

// MentionPolicy controls which '@' tokens in free text count as mentions.
type MentionPolicy struct {
	// RejectWordCharBefore drops a token when the rune immediately before '@'
	// is a letter, digit or underscore. This stops "foo@bar.com" from
	// mentioning "bar.com".
	RejectWordCharBefore bool
}

// DefaultMentionPolicy is used for all notification fan-out.
var DefaultMentionPolicy = MentionPolicy{RejectWordCharBefore: true}

// PermissiveMentionPolicy accepts every '@' token, including the domain part
// of e-mail addresses.
var PermissiveMentionPolicy = MentionPolicy{RejectWordCharBefore: false}

// ExtractMentions returns the usernames mentioned in text under DefaultMentionPolicy.
func ExtractMentions(text string) []string {
	return DefaultMentionPolicy.Extract(text)
}

// Extract returns each mentioned username once, in order of first appearance,
// with the case it was typed in.
func (p MentionPolicy) Extract(text string) []string {
	var mentions []string
	seen := make(map[string]struct{})

	for _, loc := range mentionPattern.FindAllStringSubmatchIndex(text, -1) {
		at, nameStart, nameEnd := loc[0], loc[2], loc[3]

		if p.RejectWordCharBefore && at > 0 {
			prev, _ := utf8.DecodeLastRuneInString(text[:at])
			if isWordRune(prev) {
				continue
			}
		}

		name := text[nameStart:nameEnd]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		mentions = append(mentions, name)
	}

	return mentions
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
