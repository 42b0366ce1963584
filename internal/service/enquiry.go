package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/geekysharma31/closet-api/internal/mail"
)

var ErrMailerNotReady = errors.New("email service is not ready")

// EnquiryItem is the client-supplied item shape an enquiry is about. It is
// taken at face value and never checked against the store, so stale or
// fabricated values pass through unchanged.
type EnquiryItem struct {
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Description      string   `json:"description"`
	CoverImage       string   `json:"coverImage"`
	AdditionalImages []string `json:"additionalImages"`
}

type EnquiryService interface {
	Send(ctx context.Context, item *EnquiryItem) error
}

type enquiryService struct {
	sender mail.Sender
	from   string
	to     string
}

func NewEnquiryService(sender mail.Sender, from, to string) EnquiryService {
	return &enquiryService{sender: sender, from: from, to: to}
}

var enquiryTemplate = template.Must(template.New("enquiry").Parse(`<h2 style="color:#2d3748;">New Item Enquiry</h2>
<p><strong>Item Name:</strong> {{.Name}}</p>
<p><strong>Item Type:</strong> {{.Type}}</p>
<p><strong>Description:</strong> {{.Description}}</p>
<p><strong>Cover Image:</strong><br><img src="{{.CoverImage}}" alt="Cover Image" style="max-width:300px;max-height:200px;border-radius:8px;" /></p>
{{if .AdditionalImages}}<p><strong>Additional Images:</strong></p>
<div style="display:flex;flex-wrap:wrap;gap:10px;">
{{range .AdditionalImages}}<img src="{{.}}" alt="Additional Image" style="max-width:150px;max-height:120px;border-radius:6px;" />{{end}}
</div>
{{end}}`))

// Send composes and dispatches one enquiry mail. Success means the relay
// accepted the message; there is no retry and no delivery guarantee.
func (s *enquiryService) Send(ctx context.Context, item *EnquiryItem) error {
	if item == nil {
		return fmt.Errorf("%w: item information is missing", ErrValidation)
	}
	if s.sender == nil {
		return ErrMailerNotReady
	}

	var body bytes.Buffer
	if err := enquiryTemplate.Execute(&body, item); err != nil {
		return err
	}

	return s.sender.Send(ctx, mail.Message{
		From:    s.from,
		To:      s.to,
		Subject: fmt.Sprintf("New Enquiry for %s", item.Name),
		HTML:    body.String(),
	})
}
