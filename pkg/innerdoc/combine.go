package innerdoc

import "strings"

// Combine extracts documentation from every unit, in order, and joins the
// non-empty results with one blank line between consecutive contributions.
// Units that extract to the empty string are skipped entirely and leave no
// separator behind. The first failing unit aborts the run with an
// *ExtractError naming its label; no partial output is returned.
func Combine(units []Unit, x Extractor) (string, error) {
	var all []string
	for _, u := range units {
		if err := appendDocs(&all, u.Label, u.Text, x); err != nil {
			return "", err
		}
	}
	return strings.Join(all, "\n"), nil
}

// CombineFrom is Combine for units that still have to be read. Each label is
// loaded from src and extracted before the next label is touched, so the
// first unreadable or unparseable unit aborts the whole run.
func CombineFrom(src Source, labels []string, x Extractor) (string, error) {
	var all []string
	for _, label := range labels {
		text, err := src.Load(label)
		if err != nil {
			return "", &ExtractError{Label: label, Err: err}
		}
		if err := appendDocs(&all, label, text, x); err != nil {
			return "", err
		}
	}
	return strings.Join(all, "\n"), nil
}

// appendDocs extracts one unit and accumulates its result, inserting an
// empty entry between non-empty contributions so the final join produces
// exactly one blank line there.
func appendDocs(all *[]string, label, text string, x Extractor) error {
	docs, err := x.Extract(text)
	if err != nil {
		return &ExtractError{Label: label, Err: err}
	}
	if docs == "" {
		return nil
	}
	if len(*all) > 0 {
		*all = append(*all, "")
	}
	*all = append(*all, docs)
	return nil
}
