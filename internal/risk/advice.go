package risk

import "github.com/Yinka-911/cervical-cancer-classifier/internal/model"

// Resource is an educational link shown alongside a result.
type Resource struct {
	Title string
	URL   string
}

var (
	elevatedRecommendations = []string{
		"Schedule an urgent consultation with a gynecologist or oncologist",
		"Complete all recommended diagnostic tests",
		"Discuss HPV vaccination if not previously vaccinated",
	}
	routineRecommendations = []string{
		"Continue regular screenings as recommended",
		"Maintain healthy lifestyle practices",
		"Annual check-ups advised",
	}

	highLevelTips = []string{
		"Consider more frequent cervical cancer screenings",
		"Communicate openly with your healthcare team about concerns and questions",
		"Connect with patient support groups for emotional support",
		"Review your sexual health practices with a healthcare provider",
	}
	lowLevelTips = []string{
		"Continue with regular Pap smears as recommended",
		"Practice safe sex to reduce STD risks",
		"Maintain a healthy diet and exercise routine",
		"Consider HPV vaccination if you're eligible",
	}

	resources = []Resource{
		{Title: "CDC Cervical Cancer Information", URL: "https://www.cdc.gov/cancer/cervical/"},
		{Title: "WHO Cervical Cancer Prevention", URL: "https://www.who.int/health-topics/cervical-cancer"},
		{Title: "American Cancer Society Guide", URL: "https://www.cancer.org/cancer/cervical-cancer.html"},
	}
)

// Recommendations returns the advisory list for a probability bucket.
func Recommendations(c Category) []string {
	if c.Elevated() {
		return append([]string(nil), elevatedRecommendations...)
	}
	return append([]string(nil), routineRecommendations...)
}

// Tips returns personalised health tips for the classifier's risk level.
func Tips(level string) []string {
	if level == model.RiskLevelHigh {
		return append([]string(nil), highLevelTips...)
	}
	return append([]string(nil), lowLevelTips...)
}

// Resources returns the static educational links.
func Resources() []Resource {
	return append([]Resource(nil), resources...)
}
