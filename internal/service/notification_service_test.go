package service

import (
	"context"
	"fmt"
	"testing"

	"edusync/backend/internal/dto"
	"edusync/backend/internal/model"
)

func TestNotification_AddAlwaysPrepends(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := newTestStack()

	for i := 0; i < 5; i++ {
		title := fmt.Sprintf("note-%d", i)
		item := svc.Add(ctx, NotificationDraft{
			Title:      title,
			Message:    "body",
			SenderName: "Admin",
			Type:       model.NotifyInfo,
		})

		items := svc.List(ctx).Notifications
		if items[0].ID != item.ID {
			t.Fatalf("第 %d 次插入后新通知应位于下标 0, 实际位于他处", i)
		}
		if items[0].Title != title {
			t.Fatalf("下标 0 的标题期望 %q, 实际 %q", title, items[0].Title)
		}
	}

	if n := len(svc.List(ctx).Notifications); n != 5 {
		t.Errorf("通知总数期望 5, 实际 %d", n)
	}
}

func TestNotification_AddSynthesizesFields(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := newTestStack()

	item := svc.Add(ctx, NotificationDraft{
		Title: "t", Message: "m", SenderName: "s", Type: model.NotifyAlert,
	})

	if item.ID == "" {
		t.Error("落库应合成非空 id")
	}
	if item.Timestamp <= 0 {
		t.Error("落库应合成毫秒时间戳")
	}
	if item.Read {
		t.Error("新通知 read 应为 false")
	}
}

func TestNotification_MarkAsReadIdempotent(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := newTestStack()

	item := svc.Add(ctx, NotificationDraft{
		Title: "t", Message: "m", SenderName: "s", Type: model.NotifyInfo,
	})

	svc.MarkAsRead(ctx, item.ID)
	first := svc.List(ctx)

	svc.MarkAsRead(ctx, item.ID)
	second := svc.List(ctx)

	if !first.Notifications[0].Read || !second.Notifications[0].Read {
		t.Fatal("置已读后 read 应为 true")
	}
	if first.UnreadCount != 0 || second.UnreadCount != 0 {
		t.Errorf("未读数应为 0, 实际 %d / %d", first.UnreadCount, second.UnreadCount)
	}
	if len(first.Notifications) != len(second.Notifications) {
		t.Error("重复置已读不应改变集合")
	}

	// 未知 id：空操作
	svc.MarkAsRead(ctx, "ghost")
	if n := len(svc.List(ctx).Notifications); n != 1 {
		t.Errorf("未知 id 置已读不应改变集合, 实际 %d 条", n)
	}
}

func TestNotification_BroadcastDefaults(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := newTestStack()

	item := svc.Broadcast(ctx, &dto.BroadcastRequest{
		Title: "Exam moved", Message: "Exam is now on Friday.",
	}, "")

	if item.Type != model.NotifyInfo {
		t.Errorf("类型缺省应为 info, 实际 %s", item.Type)
	}
	if item.SenderName != "Teacher" {
		t.Errorf("发件人缺省应为 Teacher, 实际 %q", item.SenderName)
	}
}
