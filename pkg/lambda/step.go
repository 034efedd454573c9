package lambda

// NextBetaReduction is the string-in, string-out boundary: tokenize,
// parse, attempt one reduction step, print. A parse failure returns the
// error message text on the same channel as a printed term; callers that
// need to tell the two apart should use ParseString and StepOnce
// directly. A term with no redex round-trips unchanged.
func NextBetaReduction(input string) string {
	term, err := ParseString(input)
	if err != nil {
		return err.Error()
	}
	term, _ = StepOnce(term)
	return Print(term)
}
