package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/internal/domain/repository"
	"voyagebj-service/pkg/logger"
)

// WhatsappRepository handles sending payloads to the WhatsApp mailcast service
type WhatsappRepository struct {
	logger      logger.Logger
	client      *http.Client
	baseURL     string
	bearerToken string
	companyID   string
	agentID     string
}

// NewWhatsappRepository creates a new WhatsApp repository
func NewWhatsappRepository(baseURL, bearerToken, companyID, agentID string, logger logger.Logger) repository.WhatsappRepository {
	return &WhatsappRepository{
		logger:      logger,
		client:      &http.Client{Timeout: 30 * time.Second},
		baseURL:     baseURL,
		bearerToken: bearerToken,
		companyID:   companyID,
		agentID:     agentID,
	}
}

// SendPayload sends a payload to the WhatsApp service and returns task ID
func (r *WhatsappRepository) SendPayload(ctx context.Context, payload *entity.Payload) (string, error) {
	msg := entity.SendMailcastMessage{
		CompanyID:   r.companyID,
		AgentID:     r.agentID,
		PhoneNumber: payload.Phone,
		Message:     entity.Message{Text: payload.Text},
		Type:        "text",
	}

	if err := msg.Message.Validate(); err != nil {
		return "", fmt.Errorf("invalid message: %w", err)
	}

	jsonData, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	r.logger.Debug("Sending payload to WhatsApp service",
		"reservationId", payload.ReservationID,
		"type", payload.Type)

	url := fmt.Sprintf("%s/api/v1/mailcast/send-message", r.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+r.bearerToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return "", fmt.Errorf("WhatsApp service returned status %d: %v", resp.StatusCode, errorBody)
	}

	var response entity.SendMailcastMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if !response.Success && response.Error.Message != "" {
		return "", fmt.Errorf("WhatsApp service refused message: %s (code: %s)", response.Error.Message, response.Error.Code)
	}

	taskID := response.Data.TaskID

	r.logger.Info("Task created successfully",
		"taskId", taskID,
		"reservationId", payload.ReservationID,
		"messageType", msg.Type)

	return taskID, nil
}
