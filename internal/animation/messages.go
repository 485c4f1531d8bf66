package animation

import (
	"iter"
	"time"
)

// MessageInterval is how long each decrypting message stays on screen.
const MessageInterval = 2 * time.Second

// DecryptingMessages are shown in turn while an attempt decrypts.
var DecryptingMessages = []string{
	"Decrypting secret assets...",
	"Calling the power of the personified evil...",
	"Debating database models...",
	"✨ Making everything perfect...",
}

// MessageAt returns the message shown after elapsed.
func MessageAt(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	return DecryptingMessages[int(elapsed/MessageInterval)%len(DecryptingMessages)]
}

// Messages cycles through [DecryptingMessages] forever, yielding each with
// the moment it appears. Callers stop the sequence by breaking out.
func Messages() iter.Seq2[time.Duration, string] {
	return func(yield func(time.Duration, string) bool) {
		for i := 0; ; i++ {
			if !yield(time.Duration(i)*MessageInterval, DecryptingMessages[i%len(DecryptingMessages)]) {
				return
			}
		}
	}
}
