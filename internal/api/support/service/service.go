package supportService

import (
	"YeloSoul/internal/api/support"
	contextPkg "YeloSoul/pkg/context"
	"YeloSoul/pkg/smtp"
	"context"

	"github.com/sirupsen/logrus"
)

type SupportService interface {
	SendReturnRequest(c context.Context, req support.ReturnRequest) error
}

type supportService struct {
	log        *logrus.Logger
	smtpMailer smtp.ItfSmtp
}

func New(log *logrus.Logger, smtpMailer smtp.ItfSmtp) SupportService {
	return &supportService{
		log:        log,
		smtpMailer: smtpMailer,
	}
}

func (s *supportService) SendReturnRequest(c context.Context, req support.ReturnRequest) error {
	requestID := contextPkg.GetRequestID(c)

	if err := s.smtpMailer.SendReturnRequest(req.Name, req.Email, req.OrderID, req.Reason); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"order_id":   req.OrderID,
			"error":      err.Error(),
		}).Error("Failed to send return request email")
		return support.ErrMailerFailure
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"order_id":   req.OrderID,
	}).Info("Return request forwarded to store inbox")

	return nil
}
