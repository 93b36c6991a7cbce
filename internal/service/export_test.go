package service

const NotificationPageSize = notificationPageSize
