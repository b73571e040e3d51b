package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/basketbackend/lib/mylog"
	"github.com/MarcGrol/basketbackend/lib/mypublisher"
	"github.com/MarcGrol/basketbackend/lib/mypubsub"
	"github.com/MarcGrol/basketbackend/lib/myqueue"
	"github.com/MarcGrol/basketbackend/lib/mystore"
	"github.com/MarcGrol/basketbackend/lib/mytime"
	"github.com/MarcGrol/basketbackend/lib/myuuid"
	"github.com/MarcGrol/basketbackend/services/basket"
	"github.com/MarcGrol/basketbackend/services/basketactivity"
	"github.com/MarcGrol/basketbackend/services/catalog"
)

func main() {
	c := context.Background()

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	productStore, productStoreCleanup, err := mystore.New[catalog.Product](c)
	if err != nil {
		log.Fatalf("Error creating product store: %s", err)
	}
	defer productStoreCleanup()

	catalogService := catalog.NewService(productStore, nower, mylog.New("catalog"))
	err = catalogService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering catalog service: %s", err)
	}

	basketStore, basketStoreCleanup, err := mystore.New[basket.Basket](c)
	if err != nil {
		log.Fatalf("Error creating basket store: %s", err)
	}
	defer basketStoreCleanup()

	basketService := basket.NewService(basketStore, catalogService, nower, uuider, publisher)
	err = basketService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering basket service: %s", err)
	}

	activityStore, activityStoreCleanup, err := mystore.New[basketactivity.Activity](c)
	if err != nil {
		log.Fatalf("Error creating activity store: %s", err)
	}
	defer activityStoreCleanup()

	activityService := basketactivity.NewService(activityStore, pubsub, nower, uuider)
	err = activityService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering basket activity service: %s", err)
	}

	startWebServerBlocking(router)
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
