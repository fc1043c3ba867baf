package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/xshare/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func roleLabel(r models.Role) string {
	return cases.Title(language.English).String(string(r))
}

func renderExperience(w io.Writer, n int, exp models.Experience, approved []models.Question) {
	fmt.Fprintf(w, "[%d] %s\n", n, exp.Company)
	fmt.Fprintf(w, "    CTC: %s\n", exp.CTC)
	fmt.Fprintf(w, "    Rounds: %s\n", exp.Rounds)
	fmt.Fprintf(w, "    Questions: %s\n", exp.Questions)
	fmt.Fprintf(w, "    Advice: %s\n", exp.Advice)
	fmt.Fprintln(w, "    Q&A:")
	if len(approved) == 0 {
		fmt.Fprintln(w, "      No questions yet.")
		return
	}
	for _, q := range approved {
		fmt.Fprintf(w, "      %s: %s\n", q.AskedBy, q.Question)
	}
}

func renderPending(w io.Writer, n int, company string, q models.Question) {
	if company == "" {
		company = "(unknown)"
	}
	fmt.Fprintf(w, "[%d] Company: %s\n", n, company)
	fmt.Fprintf(w, "    Asked By: %s\n", q.AskedBy)
	fmt.Fprintf(w, "    Question: %s\n", q.Question)
}

// pick converts a 1-based listing number into an index below n.
func pick(arg string, n int) (int, bool) {
	v, err := strconv.Atoi(arg)
	if err != nil || v < 1 || v > n {
		return 0, false
	}
	return v - 1, true
}
