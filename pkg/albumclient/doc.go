// Package albumclient provides the primary entry point for constructing a
// photo album client that implements the album.Client interface.
//
// It layers base URL normalization and the default retry policy on top of the
// transport and types defined in the album package. Most applications should
// import albumclient to build a client, then use the returned album.Client.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/photo-album/pkg/album"
//	  "github.com/fivetwenty-io/photo-album/pkg/albumclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // The public placeholder API with five retries.
//	  cli, err := albumclient.NewDefault()
//	  if err != nil { log.Fatal(err) }
//
//	  // Or a specific endpoint and policy:
//	  cli, err = albumclient.New(&album.Config{
//	    BaseURL:  "photos.internal.example.com/photos", // https is assumed
//	    RetryMax: 2,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  res, err := cli.ListPhotosByAlbum(ctx, 1)
//	  if err != nil { log.Fatal(err) }
//	  _ = res
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithEndpoint,
// NewWithLogger and NewDefault that wrap New with the appropriate
// configuration.
package albumclient
