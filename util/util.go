package util

import (
	"os"
	"sync"

	"github.com/sony/sonyflake"
)

var (
	sonyFlake *sonyflake.Sonyflake
	once      sync.Once
)

// InitSonyFlake initializes the Snowflake instance.
func InitSonyFlake() {
	once.Do(func() {
		sonyFlake = sonyflake.NewSonyflake(sonyflake.Settings{})
		if sonyFlake == nil {
			// No routable private IP, e.g. in a test container.
			sonyFlake = sonyflake.NewSonyflake(sonyflake.Settings{
				MachineID: func() (uint16, error) { return uint16(os.Getpid()), nil },
			})
		}
	})
}

// NextTxnID generates a unique transaction id.
func NextTxnID() (uint64, error) {
	if sonyFlake == nil {
		InitSonyFlake()
	}
	return sonyFlake.NextID()
}
