// Package model defines the core data structures shared by every part
// of zanmei-downloader.
//
// # Song and Album
//
// A site adapter turns an album page into an Album holding ordered
// Songs. Song identity is the site ID; titles and URLs are display and
// transport details:
//
//	album := model.NewAlbum("赞美诗选", pageURL, "izanmei.cc")
//	album.Songs = append(album.Songs, model.NewSong("16875", "第1首 圣哉三一歌", mp3URL))
//
// # Outcomes
//
// The download engine reports exactly one DownloadResult per song,
// built with Succeeded, Skipped or Failed. The batch orchestrator folds
// results into a Summary:
//
//	summary := model.NewSummary(len(songs))
//	summary.Record(result)
//	fmt.Println(summary.String()) // bilingual end-of-batch report
package model
