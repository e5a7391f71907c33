package management

import (
	"fmt"
	"strings"
)

// RevisionMessage drafts the revision request sent to a creator from the
// issues the external AI review flagged on their submission. Returns an
// empty string when there is nothing to fix, so the brand writes their
// own message instead. Pure string templating; no AI call happens here.
func RevisionMessage(mc *ManagedCreator) string {
	if mc == nil || mc.Submission == nil || len(mc.Submission.AIIssues) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s! Thanks so much for your submission. ", mc.Creator.FirstName())
	b.WriteString("Before we can approve it, could you take another look at a few things?\n\n")
	for i, issue := range mc.Submission.AIIssues {
		fmt.Fprintf(&b, "%d. %s\n", i+1, issue)
	}
	b.WriteString("\nOnce that's updated, resubmit and we'll review it right away!")
	return b.String()
}
