package candidate

import "fmt"

// InfoPrompt is the assistant message asking for the given intake field.
func InfoPrompt(label string) string {
	return fmt.Sprintf("Please provide your %s.", label)
}

// FallbackPrompt is the assistant message shown when input for a field did
// not validate. The same field is asked again.
func FallbackPrompt(label string) string {
	return fmt.Sprintf("Sorry, I didn't understand your response for %s. Could you please rephrase or provide a valid input?", label)
}
