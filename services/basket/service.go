package basket

import (
	"github.com/MarcGrol/basketbackend/lib/mylog"
	"github.com/MarcGrol/basketbackend/lib/mypublisher"
	"github.com/MarcGrol/basketbackend/lib/mystore"
	"github.com/MarcGrol/basketbackend/lib/mytime"
	"github.com/MarcGrol/basketbackend/lib/myuuid"
	"github.com/MarcGrol/basketbackend/services/catalog"
)

type service struct {
	basketStore mystore.Store[Basket]
	catalog     catalog.ProductCatalog
	publisher   mypublisher.Publisher
	identity    identityResolver
	nower       mytime.Nower
	uuider      myuuid.UUIDer
	logger      mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(store mystore.Store[Basket], productCatalog catalog.ProductCatalog, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger, pub mypublisher.Publisher) *service {
	return &service{
		basketStore: store,
		catalog:     productCatalog,
		publisher:   pub,
		identity:    newIdentityResolver(uuider),
		nower:       nower,
		uuider:      uuider,
		logger:      logger,
	}
}
