package service

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/bennett39/stocktrader/biz/dal/kafka"
	"github.com/bennett39/stocktrader/biz/model"
	"github.com/bennett39/stocktrader/biz/trading"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	kafkago "github.com/segmentio/kafka-go"
)

// Compile-time interface check.
var _ trading.Publisher = (*TransactionFeed)(nil)

// TransactionFeed publishes committed transactions to Kafka. The writer is
// async and best-effort: a feed failure never affects the committed trade.
type TransactionFeed struct {
	topic string
}

func NewTransactionFeed(topic string) *TransactionFeed {
	return &TransactionFeed{topic: topic}
}

func (f *TransactionFeed) PublishTransaction(txn *model.Transaction) {
	b, err := json.Marshal(txn)
	if err != nil {
		hlog.Errorf("transaction feed marshal failed: %v", err)
		return
	}
	msg := kafkago.Message{
		Key:   []byte(strconv.FormatUint(txn.AccountID, 10)),
		Value: b,
	}
	if err := kafka.GetWriter(f.topic).WriteMessages(context.Background(), msg); err != nil {
		hlog.Errorf("transaction feed publish failed: txn_id=%d, err=%v", txn.TxnID, err)
	}
}
