package youtube

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/hahaha-network/revsync/internal/common"
	"google.golang.org/api/googleapi"
)

// mapQueryError classifies a reports.query failure into the application
// error taxonomy. Unknown or inaccessible group ids come back as 400/404
// on the filter, which is a per-target error rather than a run-level one.
func mapQueryError(err error, groupID string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 400 || apiErr.Code == 404:
			return fmt.Errorf("%w: group %s rejected by backend: %v", common.ErrInvalidGroup, groupID, err)
		}
	}
	return mapAPIError(err)
}

// mapAPIError classifies transport-level and HTTP failures shared by all
// analytics calls.
func mapAPIError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 401 || apiErr.Code == 403:
			return fmt.Errorf("%w: %v", common.ErrAuth, err)
		case apiErr.Code == 429 || apiErr.Code >= 500:
			return fmt.Errorf("%w: %v", common.ErrTransient, err)
		}
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", common.ErrTransient, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", common.ErrTransient, err)
	}

	return err
}
