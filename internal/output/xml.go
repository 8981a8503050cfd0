package output

import (
	"encoding/xml"
	"io"

	"github.com/loclens/loclens/internal/model"
)

type xmlResults struct {
	XMLName xml.Name  `xml:"results"`
	Langs   []xmlLang `xml:"language"`
	Sum     xmlLang   `xml:"SUM"`
}

type xmlLang struct {
	Name     string `xml:"name,attr,omitempty"`
	NFiles   int64  `xml:"files_count,attr"`
	Blank    int64  `xml:"blank,attr"`
	Comment  int64  `xml:"comment,attr"`
	Code     int64  `xml:"code,attr"`
}

func renderXML(w io.Writer, summary model.Summary) error {
	res := xmlResults{
		Sum: xmlLang{
			NFiles:  summary.Totals.Files,
			Blank:   summary.Totals.Blanks,
			Comment: summary.Totals.Comments,
			Code:    summary.Totals.Code,
		},
	}
	for _, l := range summary.Languages {
		res.Langs = append(res.Langs, xmlLang{
			Name:    l.Language,
			NFiles:  l.Files,
			Blank:   l.Blanks,
			Comment: l.Comments,
			Code:    l.Code,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(res); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
