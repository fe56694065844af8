package models

// DNSQuery is a single observed DNS query as reported by a client.
type DNSQuery struct {
	IPAddress string `json:"ip_address" bson:"ip_address"`
	Domain    string `json:"domain" bson:"domain"`
	QueryType string `json:"query_type" bson:"query_type"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}
