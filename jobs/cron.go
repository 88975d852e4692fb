package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// IdleSweeper định nghĩa interface cho việc đóng các connection nhàn rỗi
type IdleSweeper interface {
	CloseIdle(m *melody.Melody, maxIdle time.Duration)
}

var idleSweeper IdleSweeper

// SetIdleSweeper thiết lập implementation cho IdleSweeper
func SetIdleSweeper(sweeper IdleSweeper) {
	idleSweeper = sweeper
}

// Connection không có tin nhắn trong 30 phút sẽ bị đóng
const maxIdle = 30 * time.Minute

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Quét connection nhàn rỗi mỗi phút
	_, err := c.AddFunc("* * * * *", func() {
		if idleSweeper == nil {
			return
		}
		idleSweeper.CloseIdle(m, maxIdle)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
