// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"

	"quickdna/pkg/api"
)

// Header returns the TSV header row for v's type.
func Header(v any) (string, error) {
	switch v.(type) {
	case api.TranslationV1:
		return TranslationHeader, nil
	case api.ReverseComplementV1:
		return RevCompHeader, nil
	case api.CanonicalV1:
		return CanonicalHeader, nil
	case api.ExpansionsV1:
		return ExpansionsHeader, nil
	case api.TableV1:
		return TableHeader, nil
	}
	return "", fmt.Errorf("no text layout for %T", v)
}

// FrameLabel renders a frame number with an explicit sign ("+1", "-3").
func FrameLabel(frame int) string {
	if frame > 0 {
		return "+" + strconv.Itoa(frame)
	}
	return strconv.Itoa(frame)
}

// CountText renders an expansion count, "overflow" when it does not fit.
func CountText(x api.ExpansionsV1) string {
	if x.Overflow {
		return "overflow"
	}
	return strconv.FormatUint(x.Count, 10)
}

// Rows returns the TSV rows for v (no trailing newlines). A result may span
// several rows; a skipped expansion still yields one row with an empty
// expansion column so the record stays visible.
func Rows(v any) ([]string, error) {
	switch x := v.(type) {
	case api.TranslationV1:
		rows := make([]string, 0, len(x.Frames))
		for _, f := range x.Frames {
			rows = append(rows, fmt.Sprintf("%s\t%s\t%d\t%s\t%s",
				x.SourceFile, x.SequenceID, x.Table, FrameLabel(f.Frame), f.Protein))
		}
		return rows, nil

	case api.ReverseComplementV1:
		return []string{fmt.Sprintf("%s\t%s\t%s", x.SourceFile, x.SequenceID, x.Seq)}, nil

	case api.CanonicalV1:
		return []string{fmt.Sprintf("%s\t%s\t%s\t%s", x.SourceFile, x.SequenceID, x.Canonical, x.Digest)}, nil

	case api.ExpansionsV1:
		if len(x.Expansions) == 0 {
			return []string{fmt.Sprintf("%s\t%s\t%s\t\t", x.SourceFile, x.SequenceID, CountText(x))}, nil
		}
		rows := make([]string, 0, len(x.Expansions))
		for i, e := range x.Expansions {
			rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%d\t%s",
				x.SourceFile, x.SequenceID, CountText(x), i+1, e))
		}
		return rows, nil

	case api.TableV1:
		return []string{fmt.Sprintf("%d\t%s", x.ID, x.Name)}, nil
	}
	return nil, fmt.Errorf("no text layout for %T", v)
}
