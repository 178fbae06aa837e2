package settings

import "fmt"

// Field describes one text option on a settings page. All fields default to "".
type Field struct {
	// Name is both the option key and the input's id/name attribute.
	Name        string
	Label       string
	Description string
}

// Section groups fields on a settings page.
type Section struct {
	ID    string
	Title string
	Page  string
}

// FieldLabel formats the <label> element for a field.
func FieldLabel(name, label string) string {
	return fmt.Sprintf(`<label for="%s">%s</label>`, EscAttr(name), EscHTML(label))
}

// TextField formats a text input bound to value, followed by the description
// paragraph when description is non-empty.
func TextField(name, value, description string) string {
	var describedBy, paragraph string
	if description != "" {
		descID := EscAttr(name + "-description")
		describedBy = fmt.Sprintf(`aria-describedby="%s" `, descID)
		paragraph = fmt.Sprintf(`<p class="description" id="%s">%s</p>`, descID, EscHTML(description))
	}
	return fmt.Sprintf(`<input type="text" class="regular-text" id="%[1]s" name="%[1]s" value="%[2]s" %[3]s/>%[4]s`,
		EscAttr(name), EscAttr(value), describedBy, paragraph)
}
