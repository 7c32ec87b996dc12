package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// CredentialsMailer define o contrato de envio do email de credenciais.
type CredentialsMailer interface {
	SendCredentials(to, name, login, tempPassword string) error
}

type Worker struct {
	Channel *amqp.Channel
	Mailer  CredentialsMailer
}

func NewWorker(ch *amqp.Channel, mailer CredentialsMailer) *Worker {
	return &Worker{
		Channel: ch,
		Mailer:  mailer,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload CredentialsPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem malformada. Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Enviando credenciais para: %s (reset=%v)", payload.Email, payload.Reset)

			if err := w.Mailer.SendCredentials(payload.Email, payload.Name, payload.Login, payload.TempPassword); err != nil {
				log.Printf("❌ [WORKER] Erro no envio de email: %s", err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Email de credenciais entregue para %s", payload.Email)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
