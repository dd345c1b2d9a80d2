// Package entities contains domain entities used across the application.
package entities

// Statement is a single quiz item: a claim about HTML together with its
// truth value, an explanation and a link to the MDN reference page.
type Statement struct {
	ID            int    `json:"id"`             // unique statement ID
	Text          string `json:"text"`           // the claim shown to the player
	IsTrue        bool   `json:"is_true"`        // whether the claim is a fact or a myth
	Explanation   string `json:"explanation"`    // shown after the answer is revealed
	ReferenceLink string `json:"reference_link"` // MDN documentation for the claim
}

// Verdict returns a short label for the statement's truth value.
func (s Statement) Verdict() string {
	if s.IsTrue {
		return "Fact"
	}
	return "Myth"
}
