package basket

import (
	"time"

	"github.com/MarcGrol/basketbackend/lib/myuuid"
)

const (
	// BuyerUIDCookieName is the client-side carrier of the anonymous buyer identity
	BuyerUIDCookieName = "buyerUid"

	// BuyerUIDMaxAge bounds how long a buyer keeps its anonymous identity.
	// The cookie is essential: without it the basket cannot be found back.
	BuyerUIDMaxAge = 30 * 24 * time.Hour
)

type identityResolver struct {
	uuider myuuid.UUIDer
}

func newIdentityResolver(uuider myuuid.UUIDer) identityResolver {
	return identityResolver{
		uuider: uuider,
	}
}

// resolve returns the incoming buyer-uid unchanged when present and mints a
// fresh one otherwise. It never fails.
func (ir identityResolver) resolve(incomingBuyerUID string) (string, bool) {
	if incomingBuyerUID != "" {
		return incomingBuyerUID, false
	}

	return ir.uuider.Create(), true
}
