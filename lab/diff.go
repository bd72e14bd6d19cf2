package lab

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// patch renders the changes from expect to output, word diff style:
// removed text as [-text-] and inserted text as {+text+}.
func patch(expect, output string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expect, output, false))

	var text strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			text.WriteString("[-" + diff.Text + "-]")
		case diffmatchpatch.DiffInsert:
			text.WriteString("{+" + diff.Text + "+}")
		default:
			text.WriteString(diff.Text)
		}
	}

	return text.String()
}

// sameOutput compares outputs, ignoring trailing newlines.
func sameOutput(expect, output string) bool {
	return strings.TrimRight(expect, "\r\n") == strings.TrimRight(output, "\r\n")
}
