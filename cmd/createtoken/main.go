package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"simplisafe.com/falcon/security"
)

func main() {
	uid := flag.Int64("uid", 0, "actor uid embedded in the token")
	service := flag.String("service", "cli", "calling service name")
	expires := flag.Int64("expires", 3600, "token lifetime in seconds")
	flag.Parse()

	secret := os.Getenv("FALCON_JWT_SECRET")
	if secret == "" {
		log.Fatal("FALCON_JWT_SECRET must be set")
	}

	token, err := security.CreateServiceToken(security.ServiceIdentity{Uid: *uid, Service: *service}, secret, *expires)
	if err != nil {
		log.Fatalf("create token: %v", err)
	}

	fmt.Println(token)
}
