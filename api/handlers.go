package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/dan13ram/mint-queue/app"
	"github.com/dan13ram/mint-queue/models"
	"github.com/dan13ram/mint-queue/payment"
	"github.com/dan13ram/mint-queue/queue"
	"github.com/dan13ram/mint-queue/trigger"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type webhookResponse struct {
	Status      string `json:"status"`
	RequestID   string `json:"request_id,omitempty"`
	ExternalRef string `json:"external_ref,omitempty"`
}

type listResponse struct {
	Count int                  `json:"count"`
	Mints []models.MintRequest `json:"mints"`
}

type healthResponse struct {
	InstanceId string                 `json:"instance_id"`
	Healthy    bool                   `json:"healthy"`
	Services   []models.ServiceHealth `json:"services"`
}

func (s *Server) handlePaymentWebhook(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	err = s.verifier.Verify(c.GetHeader(payment.HeaderTimestamp), c.GetHeader(payment.HeaderSignature), body)
	if err != nil {
		log.Warn("[API] Rejected payment webhook: ", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var event payment.Event
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json payload"})
		return
	}

	record, created, err := s.enqueuer.Enqueue(c.Request.Context(), &event)
	switch {
	case errors.Is(err, payment.ErrNotActionable):
		c.JSON(http.StatusOK, webhookResponse{Status: "ignored"})
		return
	case errors.Is(err, payment.ErrInvalidEvent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Error("[API] Error enqueueing payment ", event.EventID, ": ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not enqueue mint request"})
		return
	}

	status := "duplicate"
	switch {
	case payment.IsRejected(record):
		status = "rejected"
	case created:
		status = "created"
	}
	c.JSON(http.StatusOK, webhookResponse{
		Status:      status,
		RequestID:   record.RequestID(),
		ExternalRef: record.ExternalRef,
	})
}

func (s *Server) handleDispatch(c *gin.Context) {
	result, err := s.dispatcher.ProcessNext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": result, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (s *Server) handlePoll(c *gin.Context) {
	result, err := s.poller.PollNext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": result, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// handlePubSubDispatch acks every push; a malformed message would otherwise
// be redelivered forever.
func (s *Server) handlePubSubDispatch(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		c.Status(http.StatusNoContent)
		return
	}

	msg, err := trigger.DecodePush(body)
	if err != nil {
		log.Warn("[API] Dropped pubsub push: ", err)
		c.Status(http.StatusNoContent)
		return
	}
	if msg.InstanceId == app.InstanceId() {
		c.Status(http.StatusNoContent)
		return
	}

	result, err := s.dispatcher.ProcessNext(c.Request.Context())
	if err != nil {
		log.Error("[API] Error dispatching from pubsub push: ", err)
	} else {
		log.Debug("[API] Dispatched from pubsub push: ", result)
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleQueryStatus(c *gin.Context) {
	view, err := queue.QueryStatus(c.Request.Context(), s.store, c.Param("ref"))
	if errors.Is(err, queue.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Error("[API] Error querying status: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not query status"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func parseListFilter(c *gin.Context) (models.ListFilter, error) {
	filter := models.ListFilter{
		Recipient:   c.Query("recipient"),
		ExternalRef: c.Query("external_ref"),
	}

	if raw := c.Query("status"); raw != "" {
		for _, value := range strings.Split(raw, ",") {
			status := models.MintStatus(strings.TrimSpace(value))
			if !status.Valid() {
				return filter, errors.New("invalid status: " + string(status))
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	for key, target := range map[string]*int64{"limit": &filter.Limit, "skip": &filter.Skip} {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || value < 0 {
			return filter, errors.New("invalid " + key + ": " + raw)
		}
		*target = value
	}

	return filter, nil
}

func (s *Server) handleList(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mints, err := s.store.List(c.Request.Context(), filter)
	if err != nil {
		log.Error("[API] Error listing mint requests: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list mint requests"})
		return
	}
	if mints == nil {
		mints = []models.MintRequest{}
	}
	c.JSON(http.StatusOK, listResponse{Count: len(mints), Mints: mints})
}

func (s *Server) handleHealth(c *gin.Context) {
	var services []models.ServiceHealth
	if s.health != nil {
		services = s.health.ServiceHealths()
	}

	healthy := true
	for _, service := range services {
		healthy = healthy && service.Healthy
	}

	c.JSON(http.StatusOK, healthResponse{
		InstanceId: app.InstanceId(),
		Healthy:    healthy,
		Services:   services,
	})
}
