package models

// MaxStatusLength caps the free-text status annotation
const MaxStatusLength = 24

// AllowedEmojis is the fixed set of glyphs a mood can carry
var AllowedEmojis = []string{
	"🤩", "😍", "🥰", "😘", "😊", "🙂", "🤗", "🤔", "😐", "😑", "🙄", "😏", "😣", "😥", "😮", "🤐", "😯", "😪", "😫", "🥱",
	"😴", "😌", "😛", "😜", "😝", "🤤", "😒", "😓", "😔", "😕", "🙃", "🤑", "😲", "☹️", "🙁", "😖", "😞", "😟", "😤", "😢",
	"😭", "😦", "😧", "😨", "😩", "🤯", "😬", "😰", "😱", "🥵", "🥶", "😳", "🤪", "😵", "🥴", "😠", "😡", "🤬", "😷", "🤒",
	"🤕", "🤢", "🤮", "🤧", "😇", "🥺", "🤠", "🥳", "😎", "🤓", "🧐", "😋", "😚", "😙", "🥲", "😈", "👿", "💀", "☠️", "👻",
	"👽", "🤖", "💩", "😺", "😸", "😹", "😻", "😼", "😽", "🙀", "😿", "😾", "🙈", "🙉", "🙊", "❤️", "💔", "💕", "💞", "💓", "💗", "💖",
}

var allowedEmojiSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(AllowedEmojis))
	for _, e := range AllowedEmojis {
		set[e] = struct{}{}
	}
	return set
}()

// IsAllowedEmoji reports whether e is a member of the fixed mood set
func IsAllowedEmoji(e string) bool {
	_, ok := allowedEmojiSet[e]
	return ok
}

// TruncateStatus enforces the status length cap without splitting a rune
func TruncateStatus(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxStatusLength {
		return s
	}
	return string(runes[:MaxStatusLength])
}
