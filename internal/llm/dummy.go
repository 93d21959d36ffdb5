package llm

import "context"

type dummyClient struct {
	reply string
}

// NewDummy returns a Client that always answers with reply. It keeps local
// development working without any provider credentials.
func NewDummy(reply string) Client {
	return dummyClient{reply: reply}
}

func (d dummyClient) Chat(context.Context, []Message, Options) (string, error) {
	return d.reply, nil
}
