// Package contract renders the deterministic fallback contract used when the LLM is unavailable.
package contract

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/proposalfast/proposalfast/pkg/domain"
)

const notAgreed = "to be agreed by both parties"

const fallbackTemplate = `{{.Title}}

This {{.Type}} agreement ("Agreement") is entered into between {{.Client}} ("Client") and {{.Freelancer}} ("Service Provider").

1. SCOPE OF WORK
Service Provider will deliver the following: {{.Scope}}

2. COMPENSATION
Client agrees to pay {{.Budget}} for the work described above. Invoices are due within 30 days of receipt.

3. TIMELINE
The work will be completed within {{.Timeline}}. Delays caused by late Client feedback extend the timeline accordingly.

4. REVISIONS AND ACCEPTANCE
Client will review each deliverable within 5 business days. Up to two rounds of revisions are included.

5. INTELLECTUAL PROPERTY
Upon full payment, all rights to the final deliverables transfer to Client. Service Provider may show the work in a portfolio unless Client objects in writing.

6. CONFIDENTIALITY
Both parties keep confidential any non-public information received in connection with this Agreement.

7. TERMINATION
Either party may terminate this Agreement with 14 days written notice. Client pays for work completed up to the termination date.

8. INDEPENDENT CONTRACTOR
Service Provider acts as an independent contractor and is responsible for their own taxes and equipment.

SIGNATURES

Client: {{.Client}}
Signature: ____________________  Date: __________

Service Provider: {{.Freelancer}}
Signature: ____________________  Date: __________
`

var tmpl = template.Must(template.New("fallback").Parse(fallbackTemplate))

type fallbackData struct {
	Title      string
	Type       string
	Client     string
	Freelancer string
	Scope      string
	Budget     string
	Timeline   string
}

// RenderFallback fills request fields into a fixed contract skeleton.
// Output depends only on the request, the same request always renders the same text.
func RenderFallback(req domain.GenerateRequest) string {
	contractType := strings.TrimSpace(req.ContractType)
	data := fallbackData{
		Title:      strings.ToUpper(contractType) + " AGREEMENT",
		Type:       strings.ToLower(contractType),
		Client:     strings.TrimSpace(req.ClientName),
		Freelancer: strings.TrimSpace(req.FreelancerName),
		Scope:      strings.TrimSpace(req.ProjectScope),
		Budget:     orDefault(req.Budget, "an amount "+notAgreed),
		Timeline:   orDefault(req.Timeline, "a timeframe "+notAgreed),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// template is static and data is plain strings, execution can't fail
		panic(err)
	}
	return buf.String()
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
