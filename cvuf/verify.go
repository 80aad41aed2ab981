package cvuf

import (
	"fmt"
	"strings"
)

// Violation reports one structural problem found in a parsed document.
// Violations are advisory: the generative step is instructed to satisfy the
// contract and a violating document is still returned to the caller, with the
// violations attached to response metadata.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return v.Path + ": " + v.Message
}

var choiceTypes = map[string]struct{}{
	"dropdownInput": {},
	"radioInput":    {},
	"checkboxInput": {},
}

// Verify walks the whole document tree and checks the structural invariants
// the forms runtime depends on: unique identifiers, resolvable step/block/field
// references, first/last step navigation shape, non-empty items on
// choice-bearing fields, and no required field hidden at runtime.
func Verify(doc *Document) []Violation {
	w := &walker{
		stepIDs:  map[string]struct{}{},
		blockIDs: map[string]struct{}{},
		fieldIDs: map[string]struct{}{},
		seen:     map[string]string{},
	}

	steps := asSlice(doc.Form["steps"])
	if len(steps) == 0 {
		w.report("form.steps", "document has no steps")
	}

	// First pass: collect identifiers so forward references resolve.
	for i, raw := range steps {
		step, ok := raw.(map[string]any)
		if !ok {
			w.report(fmt.Sprintf("form.steps[%d]", i), "step is not an object")
			continue
		}
		path := fmt.Sprintf("form.steps[%d]", i)
		if id := asString(step["identifier"]); id != "" {
			w.recordID(path, id)
			w.stepIDs[id] = struct{}{}
		} else {
			w.report(path, "step has no identifier")
		}
		for j, rawBlock := range asSlice(step["blocks"]) {
			block, ok := rawBlock.(map[string]any)
			if !ok {
				continue
			}
			blockPath := fmt.Sprintf("%s.blocks[%d]", path, j)
			if id := asString(block["identifier"]); id != "" {
				w.recordID(blockPath, id)
				w.blockIDs[id] = struct{}{}
			}
			for _, field := range blockFields(block) {
				if id := asString(field["identifier"]); id != "" {
					w.recordID(blockPath+".fields", id)
					w.fieldIDs[id] = struct{}{}
				}
			}
		}
	}

	// Second pass: shape and reference checks.
	for i, raw := range steps {
		step, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		path := fmt.Sprintf("form.steps[%d]", i)
		w.checkStep(path, step, i == 0, i == len(steps)-1)
	}

	for i, raw := range asSlice(doc.Form["newRules"]) {
		rule, ok := raw.(map[string]any)
		if !ok {
			w.report(fmt.Sprintf("form.newRules[%d]", i), "rule is not an object")
			continue
		}
		w.checkRule(fmt.Sprintf("form.newRules[%d]", i), rule)
	}

	return w.violations
}

type walker struct {
	violations []Violation
	stepIDs    map[string]struct{}
	blockIDs   map[string]struct{}
	fieldIDs   map[string]struct{}
	seen       map[string]string // identifier -> first path
}

func (w *walker) report(path, format string, args ...any) {
	w.violations = append(w.violations, Violation{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (w *walker) recordID(path, id string) {
	if first, dup := w.seen[id]; dup {
		w.report(path, "duplicate identifier %q (first used at %s)", id, first)
		return
	}
	w.seen[id] = path
}

func (w *walker) checkStep(path string, step map[string]any, first, last bool) {
	buttons, _ := step["buttonsConfig"].(map[string]any)
	target := ""
	if buttons != nil {
		target = asString(buttons["targetStep"])
	}

	if first {
		if buttons == nil || !asBool(buttons["isFirstNode"]) {
			w.report(path, "first step must set buttonsConfig.isFirstNode")
		}
		back, _ := buttons["back"].(map[string]any)
		if back == nil || !asBool(back["isHidden"]) {
			w.report(path, "first step must hide the back button")
		}
	}
	if last {
		if !asBool(step["hideFooter"]) {
			w.report(path, "last step must set hideFooter")
		}
		if target != "" {
			w.report(path, "last step must not have a forward target")
		}
	} else if target != "" {
		if _, ok := w.stepIDs[target]; !ok {
			w.report(path, "targetStep %q does not resolve to a step identifier", target)
		}
	}

	for j, rawBlock := range asSlice(step["blocks"]) {
		block, ok := rawBlock.(map[string]any)
		if !ok {
			continue
		}
		blockPath := fmt.Sprintf("%s.blocks[%d]", path, j)
		blockHidden := asBool(block["isHiddenInRuntime"])
		for _, field := range blockFields(block) {
			w.checkField(blockPath, field, blockHidden)
		}
	}
}

func (w *walker) checkField(blockPath string, field map[string]any, blockHidden bool) {
	id := asString(field["identifier"])
	fieldPath := blockPath + ".field"
	if id != "" {
		fieldPath = fmt.Sprintf("%s.field[%s]", blockPath, id)
	}

	fieldType := asString(field["type"])
	if _, choice := choiceTypes[fieldType]; choice {
		items := asSlice(field["items"])
		if len(items) == 0 {
			w.report(fieldPath, "%s field has no items", fieldType)
		} else {
			for k, rawItem := range items {
				item, ok := rawItem.(map[string]any)
				if !ok || asString(item["label"]) == "" {
					w.report(fieldPath, "items[%d] is missing a label", k)
				}
			}
		}
	}

	if asBool(field["required"]) && (blockHidden || asBool(field["isHiddenInRuntime"])) {
		w.report(fieldPath, "required field is hidden at runtime")
	}

	if fieldType == "smartButton" {
		if selected, ok := field["selectedStep"].(map[string]any); ok {
			if stepID := asString(selected["identifier"]); stepID != "" {
				if _, ok := w.stepIDs[stepID]; !ok {
					w.report(fieldPath, "selectedStep %q does not resolve to a step identifier", stepID)
				}
			}
		}
	}
}

func (w *walker) checkRule(path string, rule map[string]any) {
	for i, rawAction := range asSlice(rule["action"]) {
		action, ok := rawAction.(map[string]any)
		if !ok {
			continue
		}
		actionPath := fmt.Sprintf("%s.action[%d]", path, i)
		for _, blockID := range asStrings(action["resultBlocks"]) {
			if _, ok := w.blockIDs[blockID]; !ok {
				w.report(actionPath, "resultBlocks entry %q does not resolve to a block identifier", blockID)
			}
		}
		for _, fieldID := range asStrings(action["resultFields"]) {
			if _, ok := w.fieldIDs[fieldID]; !ok {
				w.report(actionPath, "resultFields entry %q does not resolve to a field identifier", fieldID)
			}
		}
		if nav := asString(action["navigateTo"]); nav != "" {
			if _, ok := w.stepIDs[nav]; !ok {
				w.report(actionPath, "navigateTo %q does not resolve to a step identifier", nav)
			}
		}
	}
}

func blockFields(block map[string]any) []map[string]any {
	var fields []map[string]any
	for _, rawRow := range asSlice(block["rows"]) {
		row, ok := rawRow.(map[string]any)
		if !ok {
			continue
		}
		for _, rawField := range asSlice(row["fields"]) {
			if field, ok := rawField.(map[string]any); ok {
				fields = append(fields, field)
			}
		}
	}
	return fields
}

func asSlice(value any) []any {
	s, _ := value.([]any)
	return s
}

func asString(value any) string {
	s, _ := value.(string)
	return strings.TrimSpace(s)
}

func asBool(value any) bool {
	b, _ := value.(bool)
	return b
}

func asStrings(value any) []string {
	var out []string
	for _, item := range asSlice(value) {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
