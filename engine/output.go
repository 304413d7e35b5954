package engine

import (
	"fmt"

	"github.com/blackforge-sec/rulesfinder/rules"
)

const (
	hashcatLogicOn  = "!! hashcat logic ON"
	hashcatLogicOff = "!! hashcat logic OFF"
)

// FormatRule renders seq as the one or more output lines a dump writer
// should print for it. When hashcat is requested the rule is always
// representable (candidates were pre-filtered) and exactly one line is
// returned. Otherwise the default dialect is JtR; a rule with no JtR
// serialization is bracketed with the hashcat-logic sentinel lines
// around its single Hashcat-dialect line, and subsequent rules resume
// in plain JtR.
func FormatRule(seq rules.Seq, hashcat bool, details bool, count, cumulative int) []string {
	if hashcat {
		text, _ := rules.ShowRules(seq, true)
		return []string{decorate(text, details, count, cumulative)}
	}
	if text, ok := rules.ShowRules(seq, false); ok {
		return []string{decorate(text, details, count, cumulative)}
	}
	text, _ := rules.ShowRules(seq, true)
	return []string{
		hashcatLogicOn,
		decorate(text, details, count, cumulative),
		hashcatLogicOff,
	}
}

func decorate(text string, details bool, count, cumulative int) string {
	if !details {
		return text
	}
	return fmt.Sprintf("%s // [%d - %d]", text, count, cumulative)
}
