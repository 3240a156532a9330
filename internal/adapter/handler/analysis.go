package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/errors"
	analysisDTO "github.com/johnquangdev/meeting-insights/internal/adapter/dto/analysis"
	"github.com/johnquangdev/meeting-insights/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-insights/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-insights/pkg/transcript"
)

const uploadField = "file"

// Analysis handles transcript parsing and meeting analysis
type Analysis struct {
	analysisService analysis.Service
	logger          *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService analysis.Service, logger *zap.Logger) *Analysis {
	return &Analysis{
		analysisService: analysisService,
		logger:          logger,
	}
}

// ParseTranscript handles POST /transcripts/parse
// @Summary      Convert a CSV transcript
// @Description  Accepts a multipart "file", a JSON {"content"} body or raw CSV text and returns "Speaker: text" lines
// @Tags         Analysis
// @Accept       multipart/form-data,json,plain
// @Produce      json
// @Success      200  {object}  analysis.ParseResponse
// @Failure      400  {object}  common.ErrorResponse
// @Router       /transcripts/parse [post]
func (h *Analysis) ParseTranscript(c echo.Context) error {
	var content string

	switch {
	case isMultipart(c):
		_, _, data, err := readUpload(c)
		if err != nil {
			return HandleError(h.logger, c, err)
		}
		content = string(data)
	case isJSON(c):
		var req analysisDTO.ParseRequest
		if err := bindAndValidate(c, &req, "transcript"); err != nil {
			return HandleError(h.logger, c, err)
		}
		content = req.Content
	default:
		data, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidPayload())
		}
		content = string(data)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToParseResponse(transcript.ParseCSV(content)))
}

// AnalyzeMeeting handles POST /meetings/analyze
// @Summary      Analyze a meeting
// @Description  Creates an analyzed meeting from a JSON transcript or an uploaded CSV or recording
// @Tags         Analysis
// @Accept       json,multipart/form-data
// @Produce      json
// @Param        request  body      analysis.AnalyzeRequest  false  "Transcript"
// @Success      201      {object}  analysis.AnalyzeResponse
// @Failure      400      {object}  common.ErrorResponse
// @Failure      500      {object}  common.ErrorResponse
// @Router       /meetings/analyze [post]
func (h *Analysis) AnalyzeMeeting(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		result *analysis.Result
		err    error
	)

	if isMultipart(c) {
		filename, contentType, data, readErr := readUpload(c)
		if readErr != nil {
			return HandleError(h.logger, c, readErr)
		}
		result, err = h.analysisService.AnalyzeUpload(ctx, analysis.UploadInput{
			Filename:    filename,
			ContentType: contentType,
			Data:        data,
			Duration:    c.FormValue("duration"),
		})
	} else {
		var req analysisDTO.AnalyzeRequest
		if err := bindAndValidate(c, &req, "transcript"); err != nil {
			return HandleError(h.logger, c, err)
		}
		result, err = h.analysisService.AnalyzeTranscript(ctx, analysis.AnalyzeInput{
			Transcription: req.Transcription,
			Duration:      req.Duration,
			Source:        analysis.SourceTranscript,
		})
	}
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToAnalyzeResponse(result))
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

func isJSON(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

// readUpload returns the name, content type and bytes of the uploaded file
func readUpload(c echo.Context) (string, string, []byte, error) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		return "", "", nil, errors.ErrInvalidArgument("Missing file upload").WithDetail(uploadField, "is required")
	}

	f, err := fh.Open()
	if err != nil {
		return "", "", nil, errors.ErrInternal(err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", "", nil, errors.ErrInvalidPayload()
	}
	return fh.Filename, fh.Header.Get(echo.HeaderContentType), data, nil
}
