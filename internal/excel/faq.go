package excel

import (
	"io"

	"territorial-admin-bot/internal/models"
)

// FAQFileName is the well-known question file, same name the original page
// reads from its working directory.
const FAQFileName = "preguntas.xlsx"

// ImportFAQ reads question/answer pairs from the first sheet. Rows without
// a question are skipped; a missing answer column yields empty answers.
func ImportFAQ(r io.Reader) ([]models.FAQEntry, error) {
	rows, err := firstSheetRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	index := headerIndex(rows[0])
	questionCol := column(index, "pregunta")
	answerCol := column(index, "respuesta")

	var entries []models.FAQEntry
	for _, row := range rows[1:] {
		entry := models.FAQEntry{
			Question: cellValue(row, questionCol),
			Answer:   cellValue(row, answerCol),
		}
		if entry.Question == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ImportFAQFile imports from the well-known file location.
func ImportFAQFile(path string) ([]models.FAQEntry, error) {
	f, err := openDataFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ImportFAQ(f)
}
