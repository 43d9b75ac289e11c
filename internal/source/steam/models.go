package steam

// FriendListResponse is the GetFriendList v0001 payload.
type FriendListResponse struct {
	FriendsList struct {
		Friends []APIFriend `json:"friends"`
	} `json:"friendslist"`
}

type APIFriend struct {
	SteamID      string `json:"steamid"`
	Relationship string `json:"relationship"`
	FriendSince  int64  `json:"friend_since"`
}

// PlayerSummariesResponse is the GetPlayerSummaries v0002 payload. The API
// returns many more fields than are decoded here.
type PlayerSummariesResponse struct {
	Response struct {
		Players []APIPlayer `json:"players"`
	} `json:"response"`
}

type APIPlayer struct {
	SteamID     string `json:"steamid"`
	PersonaName string `json:"personaname"`
	ProfileURL  string `json:"profileurl"`
}
