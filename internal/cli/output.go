package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mrlokans/wordmail/internal/entities"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
	wordColor = color.New(color.FgCyan, color.Bold)
)

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
}

func printOK(w io.Writer, format string, args ...any) {
	okColor.Fprintf(w, "[OK] "+format+"\n", args...)
}

func printFail(w io.Writer, format string, args ...any) {
	failColor.Fprintf(w, "[FAIL] "+format+"\n", args...)
}

func printWarn(w io.Writer, format string, args ...any) {
	warnColor.Fprintf(w, "[WARN] "+format+"\n", args...)
}

func printWords(w io.Writer, words []entities.VocabularyEntry) {
	for i, word := range words {
		fmt.Fprintf(w, "\n%d. %s", i+1, wordColor.Sprint(strings.ToUpper(word.Headword)))
		if word.PartOfSpeech != "" {
			fmt.Fprintf(w, " (%s)", word.PartOfSpeech)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "   Meaning: %s\n", word.Definition)
		if word.Example != "" {
			fmt.Fprintf(w, "   Example: %s\n", word.Example)
		}
	}
	fmt.Fprintln(w)
}
