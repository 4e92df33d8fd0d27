package services

import (
	"fmt"
	"log"
	"mime/multipart"
	"unicode/utf8"
)

// maxJobDescriptionRunes keeps long PDFs from crowding out the prompt.
const maxJobDescriptionRunes = 20000

type JobDescriptionService interface {
	ExtractFromUpload(file *multipart.FileHeader) (string, error)
}

type jobDescriptionService struct {
	storageService StorageService
	pdfParser      PDFParserService
}

func NewJobDescriptionService(storageService StorageService, pdfParser PDFParserService) JobDescriptionService {
	return &jobDescriptionService{
		storageService: storageService,
		pdfParser:      pdfParser,
	}
}

// ExtractFromUpload stores the PDF only for as long as it takes to read it.
func (s *jobDescriptionService) ExtractFromUpload(file *multipart.FileHeader) (string, error) {
	filename, filePath, err := s.storageService.SaveFile(file, "job_description")
	if err != nil {
		return "", err
	}
	defer func() {
		if err := s.storageService.DeleteFile(filename); err != nil {
			log.Printf("⚠️  Failed to remove %s: %v\n", filename, err)
		}
	}()

	text, err := s.pdfParser.ExtractText(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read job description: %w", err)
	}

	return truncateRunes(text, maxJobDescriptionRunes), nil
}

func truncateRunes(text string, max int) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	return string([]rune(text)[:max])
}
