package theme

// Theme is one superhero template discovered in the template directory
type Theme struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	Description    string `json:"description"`
	TemplateFile   string `json:"templateFile"`
	TemplateURL    string `json:"templateUrl"`
	Color          string `json:"color"`
	TemplateExists bool   `json:"templateExists"`
}

// DefaultTemplateFile is used when a theme's own template is missing
const DefaultTemplateFile = "captain_early_riser.png"

// defaultColor is the accent applied to every discovered theme
const defaultColor = "#E41E26"
