package orbit

import "fmt"

// Toast texts shown by the page actions.
const (
	MsgFavoriteAdded   = "Added to favorites!"
	MsgFavoriteRemoved = "Removed from favorites"
	MsgOpeningApply    = "Opening application form..."
	MsgLoadingDetails  = "Loading school details..."
)

func searchMessage(query string) string {
	return fmt.Sprintf("Searching for %q...", query)
}
