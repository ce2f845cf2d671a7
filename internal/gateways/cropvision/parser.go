package cropvision

import "strings"

// The vision prompt asks for labeled sections; the model usually complies but
// wraps labels in markdown bold or varies the casing, so matching is loose.
var sectionLabels = map[string]string{
	"plant type":    "plantType",
	"plant":         "plantType",
	"health status": "healthStatus",
	"disease":       "disease",
	"symptoms":      "symptoms",
	"causes":        "causes",
	"cause":         "causes",
	"treatment":     "treatment",
	"prevention":    "prevention",
	"urgency level": "urgencyLevel",
	"urgency":       "urgencyLevel",
}

func parseAssessment(text string) *Assessment {
	sections := map[string][]string{}
	var current string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if field, rest, ok := matchLabel(line); ok {
			current = field
			if rest != "" {
				sections[current] = append(sections[current], splitItems(rest)...)
			}
			continue
		}
		if current != "" {
			sections[current] = append(sections[current], stripListMarker(line))
		}
	}

	single := func(field string) string {
		return strings.TrimSpace(strings.Join(sections[field], " "))
	}
	return &Assessment{
		PlantType:    single("plantType"),
		HealthStatus: single("healthStatus"),
		Disease:      single("disease"),
		Symptoms:     sections["symptoms"],
		Causes:       sections["causes"],
		Treatment:    sections["treatment"],
		Prevention:   sections["prevention"],
		UrgencyLevel: normalizeUrgency(single("urgencyLevel")),
		RawText:      text,
	}
}

// matchLabel strips list markers and markdown emphasis, then checks whether
// the line starts with a known "Label:" prefix.
func matchLabel(line string) (field, rest string, ok bool) {
	cleaned := strings.ReplaceAll(stripListMarker(line), "**", "")

	idx := strings.Index(cleaned, ":")
	if idx < 0 {
		return "", "", false
	}
	label := strings.ToLower(strings.TrimSpace(cleaned[:idx]))
	field, known := sectionLabels[label]
	if !known {
		return "", "", false
	}
	return field, strings.TrimSpace(cleaned[idx+1:]), true
}

// splitItems breaks an inline section value into list items on semicolons.
func splitItems(value string) []string {
	parts := strings.Split(value, ";")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

func stripListMarker(line string) string {
	return strings.TrimLeft(line, "-*#0123456789. ")
}

func normalizeUrgency(raw string) string {
	lower := strings.ToLower(raw)
	for _, level := range []string{"high", "medium", "low"} {
		if strings.Contains(lower, level) {
			return level
		}
	}
	return ""
}
