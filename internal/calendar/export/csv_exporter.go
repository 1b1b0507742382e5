package export

import (
	"encoding/csv"
	"io"

	"github.com/planloom/planloom-backend/internal/calendar/domain"
)

const dateLayout = "2006-01-02"

var header = []string{
	"Publish Date",
	"Content Type",
	"Copy",
	"Status",
	"Link to Asset",
	"Link to Published Post",
}

// WriteCSV writes the content items as CSV in the supplied order, one row
// per item after the header. Fields are quoted uniformly per RFC 4180, so a
// comma inside a link can no longer corrupt the row.
func WriteCSV(w io.Writer, contents []domain.Content) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, c := range contents {
		row := []string{
			c.PublishDate.Format(dateLayout),
			string(c.ContentType),
			c.Copy,
			string(c.Status),
			c.LinkToAsset,
			c.LinkToPublishedPost,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filename returns the download filename for a project's export.
func Filename(projectName string) string {
	return projectName + "-content-plan.csv"
}
