package models

// PasscodeLength is the number of characters a passcode candidate must have
// before verification is attempted.
const PasscodeLength = 6

// IsCompletePasscode reports whether candidate has exactly [PasscodeLength]
// characters. Shorter or longer input never reaches the verifier.
func IsCompletePasscode(candidate string) bool {
	return len([]rune(candidate)) == PasscodeLength
}

// IsNumericPasscode reports whether passcode is exactly [PasscodeLength]
// ASCII digits. The encoder refuses anything else.
func IsNumericPasscode(passcode string) bool {
	if len(passcode) != PasscodeLength {
		return false
	}
	for _, r := range passcode {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
