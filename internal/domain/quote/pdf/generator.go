package pdf

import "quotedesk/backend/internal/domain/quote"

type Generator interface {
	Generate(p quote.Preview) ([]byte, error)
}

// Filename derives the download name from the entered quote number.
func Filename(number string) string {
	if number == "" || number == "-" {
		number = "document"
	}
	return "quote-" + number + ".pdf"
}
