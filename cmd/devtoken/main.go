// Command devtoken mints an access token for local testing and can
// optionally check the reveal gate of a couple with it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/duetdiary/internal/common"
	pb "github.com/dmitrijs2005/duetdiary/internal/proto"
	"github.com/dmitrijs2005/duetdiary/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

func main() {
	userID := flag.String("u", "", "user id to put into the token")
	secret := flag.String("s", "secretKey", "HMAC secret shared with the server")
	validity := flag.Duration("t", 60*time.Minute, "token validity")
	addr := flag.String("check", "", "server address; when set, calls IsReadyToReveal")
	coupleID := flag.String("couple", "", "couple id for -check")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "-u is required")
		flag.Usage()
		os.Exit(2)
	}

	token, err := auth.GenerateToken(*userID, []byte(*secret), *validity)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	fmt.Println(token)

	if *addr == "" {
		return
	}

	cc, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer cc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token)

	resp, err := pb.NewDisclosureServiceClient(cc).IsReadyToReveal(ctx, &pb.CoupleRequest{CoupleId: *coupleID})
	if err != nil {
		log.Fatalf("IsReadyToReveal: %v", err)
	}
	fmt.Printf("state=%s ready=%t\n", resp.GetState(), resp.GetReady())
}
