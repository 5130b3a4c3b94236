// Copyright 2025 Microsoft Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package azqueue

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
)

func TestListQueuesSegmentResponseUnmarshal(t *testing.T) {
	body := `<?xml version="1.0" encoding="utf-8"?>
<EnumerationResults ServiceEndpoint="https://myaccount.queue.core.windows.net/">
  <Prefix>q</Prefix>
  <MaxResults>3</MaxResults>
  <Queues>
    <Queue>
      <Name>q1</Name>
      <Metadata>
        <Color>red</Color>
        <empty></empty>
      </Metadata>
    </Queue>
    <Queue>
      <Name>q2</Name>
    </Queue>
  </Queues>
  <NextMarker>q3</NextMarker>
</EnumerationResults>`

	var got ListQueuesSegmentResponse
	require.NoError(t, xml.Unmarshal([]byte(body), &got))

	want := ListQueuesSegmentResponse{
		ServiceEndpoint: to.Ptr("https://myaccount.queue.core.windows.net/"),
		Prefix:          to.Ptr("q"),
		MaxResults:      to.Ptr[int32](3),
		NextMarker:      to.Ptr("q3"),
		QueueItems: []*QueueItem{
			{Name: to.Ptr("q1"), Metadata: map[string]*string{"color": to.Ptr("red"), "empty": to.Ptr("")}},
			{Name: to.Ptr("q2")},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected response (-want +got):\n%s", diff)
	}
}

func TestDequeuedMessageItemUnmarshal(t *testing.T) {
	body := `<QueueMessagesList>
  <QueueMessage>
    <MessageId>5974b586-0df3-4e2d-ad0c-18e3892bfca2</MessageId>
    <InsertionTime>Fri, 09 Oct 2009 21:04:30 GMT</InsertionTime>
    <ExpirationTime>Fri, 16 Oct 2009 21:04:30 GMT</ExpirationTime>
    <PopReceipt>YzQ4Yzg1MDItYTc0Ny00OWNjLTkxYTUtZGM0MDFiZDAwYzEw</PopReceipt>
    <TimeNextVisible>Fri, 09 Oct 2009 23:29:20 GMT</TimeNextVisible>
    <DequeueCount>1</DequeueCount>
    <MessageText>PHRlc3Q+dGhpcyBpcyBhIHRlc3QgbWVzc2FnZTwvdGVzdD4=</MessageText>
  </QueueMessage>
</QueueMessagesList>`

	var got queueMessagesList[DequeuedMessageItem]
	require.NoError(t, xml.Unmarshal([]byte(body), &got))
	require.Len(t, got.Items, 1)

	message := got.Items[0]
	assert.Equal(t, "5974b586-0df3-4e2d-ad0c-18e3892bfca2", *message.MessageID)
	assert.Equal(t, time.Date(2009, time.October, 9, 21, 4, 30, 0, time.UTC), *message.InsertionTime)
	assert.Equal(t, time.Date(2009, time.October, 16, 21, 4, 30, 0, time.UTC), *message.ExpirationTime)
	assert.Equal(t, time.Date(2009, time.October, 9, 23, 29, 20, 0, time.UTC), *message.TimeNextVisible)
	assert.Equal(t, int64(1), *message.DequeueCount)
	assert.Equal(t, "YzQ4Yzg1MDItYTc0Ny00OWNjLTkxYTUtZGM0MDFiZDAwYzEw", *message.PopReceipt)
}

func TestInvalidMessageTime(t *testing.T) {
	body := `<QueueMessage><MessageId>1</MessageId><InsertionTime>yesterday</InsertionTime></QueueMessage>`
	var got PeekedMessageItem
	require.Error(t, xml.Unmarshal([]byte(body), &got))
}

func TestGeoReplicationMarshal(t *testing.T) {
	stats := StorageServiceStats{
		GeoReplication: &GeoReplication{
			Status:       to.Ptr(GeoReplicationStatusBootstrap),
			LastSyncTime: to.Ptr(time.Date(2018, time.March, 28, 9, 30, 0, 0, time.UTC)),
		},
	}
	data, err := xml.Marshal(stats)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<LastSyncTime>Wed, 28 Mar 2018 09:30:00 GMT</LastSyncTime>")

	var got StorageServiceStats
	require.NoError(t, xml.Unmarshal(data, &got))
	if diff := cmp.Diff(stats, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestQueueItemMarshalMetadata(t *testing.T) {
	data, err := xml.Marshal(QueueItem{
		Name:     to.Ptr("orders"),
		Metadata: map[string]*string{"owner": to.Ptr("billing")},
	})
	require.NoError(t, err)
	assert.Equal(t, "<QueueItem><Name>orders</Name><Metadata><owner>billing</owner></Metadata></QueueItem>", string(data))
}
