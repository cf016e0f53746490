package service

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"os"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"go.uber.org/zap"

	"github.com/edufund/scholarship-finder/client"
	"github.com/edufund/scholarship-finder/dto"
	"github.com/edufund/scholarship-finder/utils"
)

// minEmbeddedTextLen is the point below which a PDF is treated as scanned and
// sent through image extraction plus OCR instead.
const minEmbeddedTextLen = 20

// DocumentService turns an uploaded marksheet/certificate into a student
// profile: text extraction (PDF text, scanned-page OCR or image OCR) followed
// by the field-extraction rules. An Aadhaar-style QR code, when present,
// supplies exact name and state values.
type DocumentService struct {
	tesseractClient *client.TesseractClient
	pdfProcessor    PDFProcessor
	logger          *zap.Logger
}

func NewDocumentService(tesseractClient *client.TesseractClient, pdfProcessor PDFProcessor, logger *zap.Logger) *DocumentService {
	return &DocumentService{
		tesseractClient: tesseractClient,
		pdfProcessor:    pdfProcessor,
		logger:          logger,
	}
}

// ExtractProfile extracts raw text from the uploaded file and parses it into
// a partial student profile. The returned raw text is echoed in the response
// so callers can see what the extraction worked with.
func (s *DocumentService) ExtractProfile(fileHeader *multipart.FileHeader) (dto.StudentProfile, string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return dto.StudentProfile{}, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return dto.StudentProfile{}, "", fmt.Errorf("failed to read file: %w", err)
	}

	var text string
	var qrData *dto.AadhaarQRData

	if strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		text, err = s.extractFromPDF(fileBytes, fileHeader.Filename)
		if err != nil {
			return dto.StudentProfile{}, "", err
		}
	} else {
		text, qrData, err = s.extractFromImage(fileHeader, fileBytes)
		if err != nil {
			return dto.StudentProfile{}, "", err
		}
	}

	if strings.TrimSpace(text) == "" && qrData == nil {
		return dto.StudentProfile{}, "", fmt.Errorf("no text could be extracted from %s", fileHeader.Filename)
	}

	profile := utils.ParseStudentProfile(text)
	applyQRData(&profile, qrData)
	return profile, text, nil
}

// extractFromPDF tries embedded text first, then falls back to OCR over the
// extracted page images for scanned PDFs.
func (s *DocumentService) extractFromPDF(pdfData []byte, filename string) (string, error) {
	text, err := s.pdfProcessor.ExtractText(pdfData)
	if err != nil {
		s.logger.Warn("pdf text extraction failed",
			zap.String("file", filename), zap.Error(err))
	}
	if len(strings.TrimSpace(text)) >= minEmbeddedTextLen {
		return text, nil
	}

	s.logger.Info("pdf has minimal embedded text, running page OCR",
		zap.String("file", filename))

	images, err := s.pdfProcessor.ExtractImages(pdfData)
	if err != nil {
		return "", fmt.Errorf("failed to extract images from scanned pdf: %w", err)
	}
	if len(images) == 0 {
		return "", fmt.Errorf("no pages could be extracted from %s", filename)
	}

	var combined strings.Builder
	for i, img := range images {
		pageText, err := s.ocrImage(img)
		if err != nil {
			s.logger.Warn("page ocr failed",
				zap.String("file", filename), zap.Int("page", i+1), zap.Error(err))
			continue
		}
		combined.WriteString(pageText)
		combined.WriteString("\n")
	}
	return combined.String(), nil
}

// extractFromImage decodes the image, attempts a QR read, then runs OCR.
// QR failure is normal for plain marksheets and is not an error.
func (s *DocumentService) extractFromImage(fileHeader *multipart.FileHeader, fileBytes []byte) (string, *dto.AadhaarQRData, error) {
	var qrData *dto.AadhaarQRData
	if img, _, err := image.Decode(bytes.NewReader(fileBytes)); err == nil {
		qrData = s.decodeQR(img)
	}

	text, err := s.tesseractClient.ExtractTextFromFile(fileHeader)
	if err != nil {
		if qrData != nil {
			s.logger.Warn("image ocr failed, using qr data only", zap.Error(err))
			return "", qrData, nil
		}
		return "", nil, fmt.Errorf("image OCR failed: %w", err)
	}
	return text, qrData, nil
}

// decodeQR tries to read an Aadhaar print-letter QR code from the image.
func (s *DocumentService) decodeQR(img image.Image) *dto.AadhaarQRData {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return nil
	}

	var qrData dto.AadhaarQRData
	if err := xml.Unmarshal([]byte(result.GetText()), &qrData); err != nil {
		return nil
	}
	if qrData.Name == "" && qrData.State == "" {
		return nil
	}

	s.logger.Info("decoded identity qr code", zap.String("state", qrData.State))
	return &qrData
}

// applyQRData fills profile fields the regex rules left absent. QR values are
// exact, so they also override a regex-derived name.
func applyQRData(profile *dto.StudentProfile, qrData *dto.AadhaarQRData) {
	if qrData == nil {
		return
	}
	if qrData.Name != "" {
		name := qrData.Name
		profile.Name = &name
	}
	if profile.State == nil && qrData.State != "" {
		state := qrData.State
		profile.State = &state
	}
}

// ocrImage writes the image to a temp PNG and runs tesseract on it.
func (s *DocumentService) ocrImage(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "ocr-img-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if err := png.Encode(tempFile, img); err != nil {
		tempFile.Close()
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	tempFile.Close()

	return s.tesseractClient.ExtractTextFromPath(tempPath)
}
