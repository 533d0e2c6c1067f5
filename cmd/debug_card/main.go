package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/supermom/supermom-api/internal/pkg/card"
)

func main() {
	image := flag.String("image", "", "source image path")
	story := flag.String("story", "", "story text (default story if empty)")
	out := flag.String("out", "card_debug.jpg", "output path")
	name := flag.String("name", "", "mom's name for the greeting line")
	nickname := flag.String("nickname", "", "mom's nickname for the greeting line")
	flag.Parse()

	if *image == "" {
		log.Fatal("usage: debug_card -image photo.jpg [-story ...] [-out card.jpg]")
	}

	req := card.Request{
		ImagePath:  *image,
		Story:      *story,
		OutputPath: *out,
	}
	if *name != "" {
		req.Greeting = &card.Greeting{Name: *name, Nickname: *nickname}
	}

	res := card.NewGenerator().Generate(req)

	fmt.Println("--- Card result ---")
	fmt.Printf("path:     %s\n", res.Path)
	fmt.Printf("degraded: %v\n", res.Degraded)
	fmt.Printf("size:     %dx%d\n", res.Width, res.Height)
	fmt.Printf("lines:    %d\n", res.Lines)
}
