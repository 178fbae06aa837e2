package settings

import (
	"bufio"
	"fmt"
	"io"
)

// RenderPage writes the settings form for page: each section's title followed
// by a table of its fields bound to their stored values. action is the form's
// submit URL.
func (s *Service) RenderPage(w io.Writer, page, action string) error {
	values, err := s.Values(page)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<form method="post" action="%s">`, EscAttr(action))
	for _, sec := range s.Sections(page) {
		fmt.Fprintf(bw, "\n<h2>%s</h2>\n", EscHTML(sec.Title))
		bw.WriteString(`<table class="form-table" role="presentation">`)
		for _, f := range s.Fields(page, sec.ID) {
			fmt.Fprintf(bw, "\n<tr><th scope=\"row\">%s</th><td>%s</td></tr>",
				FieldLabel(f.Name, f.Label),
				TextField(f.Name, values[f.Name], f.Description))
		}
		bw.WriteString("\n</table>")
	}
	bw.WriteString("\n<p class=\"submit\"><input type=\"submit\" name=\"submit\" class=\"button button-primary\" value=\"Save Changes\" /></p>\n</form>")
	return bw.Flush()
}
