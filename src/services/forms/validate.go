package forms

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"Backend-FormCraft/src/models"
	"Backend-FormCraft/src/services/logic"
)

// ValidateFields checks a field list before it is stored. All problems are
// collected into a models.ValidationErrors.
func ValidateFields(fields []models.Field) error {
	var errs models.ValidationErrors
	fields = trimIDs(fields)
	ids := make(map[string]bool, len(fields))

	for i, f := range fields {
		path := fmt.Sprintf("fields[%d]", i)
		id := f.ID
		switch {
		case id == "":
			errs.Add(path+".id", "is required")
		case ids[id]:
			errs.Add(path+".id", fmt.Sprintf("duplicate field id %q", id))
		default:
			ids[id] = true
		}
		if strings.TrimSpace(f.Label) == "" {
			errs.Add(path+".label", "is required")
		}
		if !f.Type.Valid() {
			errs.Add(path+".type", fmt.Sprintf("unknown field type %q", f.Type))
			continue
		}
		if f.Width != "" && f.Width != models.WidthFull && f.Width != models.WidthHalf {
			errs.Add(path+".width", "must be full or half")
		}
		if f.Type.NeedsOptions() && len(f.Options) == 0 {
			errs.Add(path+".options", "at least one option is required")
		}
		if f.Type == models.FieldMatrix && (len(f.MatrixRows) == 0 || len(f.MatrixColumns) == 0) {
			errs.Add(path, "matrix fields need rows and columns")
		}
		if v := f.Validation; v != nil {
			if v.Min != nil && v.Max != nil && *v.Min > *v.Max {
				errs.Add(path+".validation", "min must not exceed max")
			}
			if v.Regex != "" {
				if _, err := regexp.Compile(v.Regex); err != nil {
					errs.Add(path+".validation.regex", "invalid pattern: "+err.Error())
				}
			}
		}
	}

	for i, f := range fields {
		if f.Logic == nil || f.Logic.ShowWhenFieldID == "" {
			continue
		}
		path := fmt.Sprintf("fields[%d].logic", i)
		ref := f.Logic.ShowWhenFieldID
		switch {
		case ref == f.ID:
			errs.Add(path, "a field cannot depend on itself")
		case !ids[ref]:
			errs.Add(path, fmt.Sprintf("references unknown field %q", ref))
		}
		switch f.Logic.Operator {
		case "", models.OpEquals, models.OpNotEquals, models.OpContains:
		default:
			errs.Add(path+".operator", fmt.Sprintf("unknown operator %q", f.Logic.Operator))
		}
	}

	if len(errs) == 0 {
		if id := logic.FindCycle(fields); id != "" {
			errs.Add("fields", fmt.Sprintf("conditional logic cycle through field %q", id))
		}
	}
	return errs.Err()
}

// normalizeFields orders fields by their order value and renumbers them.
func normalizeFields(fields []models.Field) []models.Field {
	out := make([]models.Field, len(fields))
	copy(out, trimIDs(fields))
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	for i := range out {
		out[i].Order = i
		if out[i].Width == "" {
			out[i].Width = models.WidthFull
		}
		if out[i].Logic != nil {
			rule := *out[i].Logic
			if rule.Operator == "" {
				rule.Operator = models.OpEquals
			}
			out[i].Logic = &rule
			if rule.ShowWhenFieldID == "" {
				out[i].Logic = nil
			}
		}
	}
	return out
}

// trimIDs copies fields with ids and logic references trimmed, so checks see
// the ids that get stored.
func trimIDs(fields []models.Field) []models.Field {
	out := make([]models.Field, len(fields))
	for i, f := range fields {
		f.ID = strings.TrimSpace(f.ID)
		if f.Logic != nil {
			rule := *f.Logic
			rule.ShowWhenFieldID = strings.TrimSpace(rule.ShowWhenFieldID)
			f.Logic = &rule
		}
		out[i] = f
	}
	return out
}
