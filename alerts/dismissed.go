package alerts

import (
	"github.com/rentfolio/rentfolio_backend/config"
)

/*
cache:
	DismissedAlerts:$businessId => set of dismissed notification ids
*/

// LoadDismissed returns the agency's dismissed notification ids. A Redis
// failure degrades to an empty set: the user sees previously dismissed
// alerts again rather than an error page.
func LoadDismissed(businessId string) map[string]bool {
	members, err := config.GetRedisSetMembers("DismissedAlerts:" + businessId)
	if err != nil {
		logger := config.GetLogger()
		config.LogError(logger, "dismissed.go", "LoadDismissed", "smembers", businessId, err)
		return map[string]bool{}
	}
	dismissed := make(map[string]bool, len(members))
	for _, id := range members {
		dismissed[id] = true
	}
	return dismissed
}

func Dismiss(businessId string, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	return config.AddRedisSet("DismissedAlerts:"+businessId, ids...)
}
