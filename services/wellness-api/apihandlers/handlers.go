package apihandlers

import (
	"math/rand"
	"net/http"
	"time"

	wellnessDB "github.com/kenzieke/sleepwell-backend/pkg/db/wellness"
	"github.com/kenzieke/sleepwell-backend/pkg/progress"
	"github.com/kenzieke/sleepwell-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	wellnessDBConn     *wellnessDB.WellnessDBService
	aggregator         *progress.Aggregator
	tokenSignKey       string
	tokenExpiresIn     time.Duration
	allowedInstanceIDs []string
}

func NewHTTPHandler(
	tokenSignKey string,
	tokenExpiresIn time.Duration,
	wellnessDBConn *wellnessDB.WellnessDBService,
	allowedInstanceIDs []string,
) *HttpEndpoints {
	return &HttpEndpoints{
		wellnessDBConn:     wellnessDBConn,
		aggregator:         progress.NewAggregator(wellnessDBConn),
		tokenSignKey:       tokenSignKey,
		tokenExpiresIn:     tokenExpiresIn,
		allowedInstanceIDs: allowedInstanceIDs,
	}
}

func (h *HttpEndpoints) isInstanceAllowed(instanceID string) bool {
	return utils.ContainsString(h.allowedInstanceIDs, instanceID)
}

// randomWait blocks between min and max seconds to slow down brute forcing
// of credentials.
func randomWait(minTime int, maxTime int) {
	time.Sleep(time.Duration(rand.Intn(maxTime-minTime)+minTime) * time.Second)
}
