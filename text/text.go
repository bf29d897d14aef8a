package text

import (
	"strconv"
	"strings"

	"github.com/CytherisRose/hydra/token"
)

const (
	VERSION = "0.1"
	PROMPT  = "→ "
)

const (
	RESET  = "\033[0m"
	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	CYAN   = "\033[36m"
)

var (
	ERROR = Red("error") + ": "
)

func Emph(s string) string {
	return CYAN + "'" + s + "'" + RESET
}

func Red(s string) string {
	return RED + s + RESET
}

func Green(s string) string {
	return GREEN + s + RESET
}

func Yellow(s string) string {
	return YELLOW + s + RESET
}

func Logo() string {
	var padding string
	if len(VERSION)%2 == 0 {
		padding = ","
	}
	titleText := " hydra" + padding + " version " + VERSION + " "
	leftMargin := "  "
	bar := strings.Repeat("═", len(titleText)/2)
	logoString := "\n" +
		leftMargin + "╔" + bar + "○" + bar + "╗\n" +
		leftMargin + "║" + titleText + "║\n" +
		leftMargin + "╚" + bar + "○" + bar + "╝\n\n"
	return logoString
}

func DescribePos(tok token.Token) string {
	if tok.Line <= 0 {
		return ""
	}
	result := " at line " + Yellow(strconv.Itoa(tok.Line))
	prettySource := tok.Source
	if prettySource == "" || prettySource == "REPL input" {
		return result
	}
	return result + " of " + Emph(prettySource)
}
