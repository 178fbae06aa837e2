package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const codeOption = "hm_facebook_domain_verification_code"

func TestFieldLabel(t *testing.T) {
	assert.Equal(t,
		`<label for="hm_facebook_domain_verification_code">Verification code</label>`,
		FieldLabel(codeOption, "Verification code"))

	assert.Equal(t,
		`<label for="a&quot;b">&lt;em&gt;Code&lt;/em&gt; &amp; more</label>`,
		FieldLabel(`a"b`, "<em>Code</em> & more"))
}

func TestTextFieldWithoutDescription(t *testing.T) {
	got := TextField(codeOption, "abc123", "")
	assert.Equal(t,
		`<input type="text" class="regular-text" id="hm_facebook_domain_verification_code" name="hm_facebook_domain_verification_code" value="abc123" />`,
		got)
	assert.NotContains(t, got, "aria-describedby")
	assert.NotContains(t, got, "<p")
}

func TestTextFieldWithDescription(t *testing.T) {
	got := TextField(codeOption, "", "Enter your domain verification code from Facebook.")
	assert.Equal(t,
		`<input type="text" class="regular-text" id="hm_facebook_domain_verification_code" name="hm_facebook_domain_verification_code" value="" `+
			`aria-describedby="hm_facebook_domain_verification_code-description" />`+
			`<p class="description" id="hm_facebook_domain_verification_code-description">Enter your domain verification code from Facebook.</p>`,
		got)
}

func TestTextFieldEscapesEveryContext(t *testing.T) {
	got := TextField("n", `"><script>alert('x')</script>`, "<b>bold</b> & 'quoted'")
	assert.Contains(t, got, `value="&quot;&gt;&lt;script&gt;alert(&#039;x&#039;)&lt;/script&gt;"`)
	assert.Contains(t, got, `>&lt;b&gt;bold&lt;/b&gt; &amp; &#039;quoted&#039;</p>`)
	assert.NotContains(t, got, "<script>")
}

func TestEscAttr(t *testing.T) {
	assert.Equal(t, "&amp;&lt;&gt;&quot;&#039;", EscAttr(`&<>"'`))
	assert.Equal(t, "plain", EscHTML("plain"))
}
