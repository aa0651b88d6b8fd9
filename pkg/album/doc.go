// Package album provides types and interfaces for reading a remote photo
// album resource.
//
// # Overview
//
// The resource is a single JSON endpoint that returns an array of photo
// records. Albums are not fetched on their own; an album is the set of photos
// sharing an albumId. The album package defines the Photo record, the Client
// interface and the Result type used to report outcomes. A concrete client is
// built by the albumclient package and is wired by the photo-album command.
//
// Getting a client
//
//	cli, err := albumclient.New(&album.Config{
//	  BaseURL:  "https://jsonplaceholder.typicode.com/photos",
//	  RetryMax: 5,
//	})
//	if err != nil { log.Fatal(err) }
//
//	res, err := cli.ListAlbumIDs(ctx)
//	if err != nil { log.Fatal(err) }
//	if res.Found() {
//	  fmt.Println(res.Data)
//	}
//
// # Results
//
// Result carries one of three statuses. StatusOK means data is present.
// StatusEmpty means the API answered successfully but there was nothing to
// return (for GetPhoto, no photo matched). StatusUnavailable is the no-data
// sentinel: the API did not answer with a success status even after retries.
// Result.Err converts the last two into ErrNoResults and ErrResourceNotReached
// for callers that prefer errors.
//
// # Errors
//
// Errors returned alongside a Result are unexpected failures: malformed
// response bodies and transport errors that outlived the retry policy.
// StatusError reports the final HTTP status of a failed request.
package album
