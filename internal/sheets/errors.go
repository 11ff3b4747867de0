package sheets

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/hahaha-network/revsync/internal/common"
	"google.golang.org/api/googleapi"
)

// mapSheetsError classifies Sheets API failures into the application error
// taxonomy.
func mapSheetsError(err error) error {
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
